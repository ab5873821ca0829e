// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// commentPolicy sanitizes HTML produced from doc comments before it is marked
// trusted for the module template.
var commentPolicy = bluemonday.UGCPolicy()

// commentMarkdown converts doc comments from CommonMark; the instance is safe
// for concurrent Convert calls and is built once like the module template.
var commentMarkdown = goldmark.New()

// renderCommentHTML converts one CommonMark doc comment into sanitized HTML.
// Empty comments render as empty output.
func renderCommentHTML(comment string) (template.HTML, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return "", nil
	}

	var out bytes.Buffer
	if err := commentMarkdown.Convert([]byte(comment), &out); err != nil {
		return "", err
	}

	//nolint:gosec // Sanitized through the bluemonday UGC policy right above.
	return template.HTML(commentPolicy.SanitizeBytes(out.Bytes())), nil
}
