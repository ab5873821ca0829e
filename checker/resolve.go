// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package checker

import (
	"fmt"
	"strings"

	"github.com/fenlang/fendoc"
)

// checkModule derives the module record type from parsed declarations.
// Type-level entries keep their body text as written; value-level entries get
// module-local aliases expanded.
func checkModule(module *SourceModule) (*ModuleType, error) {
	aliases := make(map[string]string)
	for _, decl := range module.Decls {
		if decl.Kind != DeclType {
			continue
		}

		// First declaration wins for resolution; duplicates still appear
		// in the field lists below.
		if _, exists := aliases[decl.Name]; exists {
			continue
		}

		aliases[decl.Name] = decl.Type
	}

	resolved := make(map[string]string, len(aliases))
	for name := range aliases {
		if _, err := resolveAlias(name, aliases, resolved, map[string]bool{}); err != nil {
			return nil, err
		}
	}

	typ := &ModuleType{}
	for _, decl := range module.Decls {
		switch decl.Kind {
		case DeclType:
			typ.typeFields = append(typ.typeFields, fendoc.FieldEntry{
				Name: decl.Name,
				Type: decl.Type,
			})
		case DeclValue:
			typ.valueFields = append(typ.valueFields, fendoc.FieldEntry{
				Name: decl.Name,
				Type: substituteAliases(decl.Type, resolved),
			})
		}
	}

	return typ, nil
}

// resolveAlias expands one alias body to its fully resolved text, memoizing
// results and failing on expansion cycles.
func resolveAlias(name string, aliases, resolved map[string]string, active map[string]bool) (string, error) {
	if text, ok := resolved[name]; ok {
		return text, nil
	}

	if active[name] {
		return "", fmt.Errorf("%w through %s", ErrAliasCycle, name)
	}

	active[name] = true
	defer delete(active, name)

	var out strings.Builder
	for _, token := range splitTypeTokens(aliases[name]) {
		if _, ok := aliases[token]; !ok {
			out.WriteString(token)
			continue
		}

		expanded, err := resolveAlias(token, aliases, resolved, active)
		if err != nil {
			return "", err
		}

		out.WriteString(expanded)
	}

	resolved[name] = out.String()
	return resolved[name], nil
}

// substituteAliases replaces identifiers with their resolved alias text.
func substituteAliases(text string, resolved map[string]string) string {
	var out strings.Builder
	out.Grow(len(text))

	for _, token := range splitTypeTokens(text) {
		if expanded, ok := resolved[token]; ok {
			out.WriteString(expanded)
			continue
		}

		out.WriteString(token)
	}

	return out.String()
}

// splitTypeTokens splits type text into alternating identifier and separator
// runs so alias names can be replaced without touching surrounding syntax.
func splitTypeTokens(text string) []string {
	runes := []rune(text)
	tokens := make([]string, 0, 8)

	for index := 0; index < len(runes); {
		end := index
		if isIdentStart(runes[index]) {
			for end < len(runes) && isIdentRune(runes[end]) {
				end++
			}
		} else {
			for end < len(runes) && !isIdentStart(runes[end]) {
				end++
			}
		}

		tokens = append(tokens, string(runes[index:end]))
		index = end
	}

	return tokens
}
