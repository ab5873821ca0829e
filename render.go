// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

// templateFS stores the module page template embedded into the package.
//
//go:embed templates/module.html.gotmpl
var templateFS embed.FS

// moduleTemplatePath is the embedded location of the module page template.
const moduleTemplatePath = "templates/module.html.gotmpl"

// moduleTemplate is parsed once at package init and reused for every module.
// A parse failure here is a defect in the embedded asset, not a runtime
// condition.
var moduleTemplate = template.Must(
	template.New("module").Funcs(templateFuncs()).Parse(mustTemplateText()),
)

// templateFuncs provides utility functions available inside the module template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown": renderCommentHTML,
	}
}

// mustTemplateText loads embedded module template text for init-time parsing.
func mustTemplateText() string {
	text, err := ModuleTemplate()
	if err != nil {
		panic(err)
	}

	return text
}

// ModuleTemplate returns the embedded module page template text.
func ModuleTemplate() (string, error) {
	data, err := templateFS.ReadFile(moduleTemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	return string(data), nil
}

// Generate builds the documentation record for one module and renders it
// into out. Rendering is deterministic for equal inputs.
func Generate(out io.Writer, name string, typ Type, meta *Metadata) error {
	module := Module{
		Name:   name,
		Record: NewRecord(typ, meta),
	}

	if err := moduleTemplate.Execute(out, module); err != nil {
		return fmt.Errorf("%w %q: %w", ErrExecuteTemplate, name, err)
	}

	return nil
}
