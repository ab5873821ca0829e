// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package checker

import (
	"fmt"
	"strings"
	"unicode"
)

// docCommentPrefix marks doc comment lines attached to the next declaration.
const docCommentPrefix = "///"

// parseModule parses one module's source text into its declaration list.
func parseModule(name, source string) (*SourceModule, error) {
	module := &SourceModule{Name: name}
	lines := strings.Split(source, "\n")

	var pending []string
	index := 0
	for index < len(lines) {
		line := strings.TrimSpace(lines[index])
		lineNumber := index + 1

		switch {
		case strings.HasPrefix(line, docCommentPrefix):
			pending = append(pending, docCommentText(line))
			index++

		case strings.HasPrefix(line, "type "):
			decl, next, err := parseTypeDecl(lines, index)
			if err != nil {
				return nil, err
			}

			decl.Comment = joinDocComment(pending)
			pending = nil
			module.Decls = append(module.Decls, decl)
			index = next

		case strings.HasPrefix(line, "let "):
			decl, err := parseLetDecl(line, lineNumber)
			if err != nil {
				return nil, err
			}

			decl.Comment = joinDocComment(pending)
			pending = nil
			module.Decls = append(module.Decls, decl)
			index++

		default:
			// Blank lines and binding body continuations detach any
			// accumulated doc comment.
			pending = nil
			index++
		}
	}

	return module, nil
}

// parseTypeDecl parses one `type Name = ...` declaration starting at line
// start, consuming continuation lines of a multi-line record body. It returns
// the declaration and the index of the first unconsumed line.
func parseTypeDecl(lines []string, start int) (Decl, int, error) {
	lineNumber := start + 1
	raw := strings.TrimSpace(lines[start])

	assignIndex := strings.Index(raw, "=")
	if assignIndex < 0 {
		return Decl{}, 0, fmt.Errorf("%w: line %d: type declaration missing %q", ErrMalformedDeclaration, lineNumber, "=")
	}

	name := strings.TrimSpace(raw[len("type"):assignIndex])
	if !isIdentifier(name) {
		return Decl{}, 0, fmt.Errorf("%w: line %d: invalid type name %q", ErrMalformedDeclaration, lineNumber, name)
	}

	body := strings.TrimSpace(raw[assignIndex+1:])
	if body == "" {
		return Decl{}, 0, fmt.Errorf("%w: line %d: type %s has no body", ErrMalformedDeclaration, lineNumber, name)
	}

	decl := Decl{Kind: DeclType, Name: name}
	decl.Fields = appendRecordFields(decl.Fields, body, "")

	segments := []string{body}
	depth := braceDelta(body)
	next := start + 1

	var pending []string
	for depth > 0 && next < len(lines) {
		line := strings.TrimSpace(lines[next])
		next++

		if strings.HasPrefix(line, docCommentPrefix) {
			pending = append(pending, docCommentText(line))
			continue
		}

		segments = append(segments, line)
		depth += braceDelta(line)
		decl.Fields = appendRecordFields(decl.Fields, line, joinDocComment(pending))
		pending = nil
	}

	if depth > 0 {
		return Decl{}, 0, fmt.Errorf("%w: line %d: type %s", ErrUnterminatedRecord, lineNumber, name)
	}

	decl.Type = strings.Join(strings.Fields(strings.Join(segments, " ")), " ")
	return decl, next, nil
}

// parseLetDecl parses one `let name : Type = expr` or `let name = literal`
// declaration. Only the head line matters for documentation; body
// continuations are skipped by the caller.
func parseLetDecl(line string, lineNumber int) (Decl, error) {
	assignIndex := strings.Index(line, "=")
	if assignIndex < 0 {
		return Decl{}, fmt.Errorf("%w: line %d: let declaration missing %q", ErrMalformedDeclaration, lineNumber, "=")
	}

	head := strings.TrimSpace(line[len("let"):assignIndex])
	body := strings.TrimSpace(line[assignIndex+1:])

	name := head
	annotation := ""
	if colonIndex := strings.Index(head, ":"); colonIndex >= 0 {
		name = strings.TrimSpace(head[:colonIndex])
		annotation = strings.TrimSpace(head[colonIndex+1:])
	}

	if !isIdentifier(name) {
		return Decl{}, fmt.Errorf("%w: line %d: invalid binding name %q", ErrMalformedDeclaration, lineNumber, name)
	}

	// An annotated binding may continue its body on following lines; an
	// unannotated one must carry an inferable literal on the head line.
	decl := Decl{Kind: DeclValue, Name: name, Type: annotation}
	if annotation == "" {
		if body == "" {
			return Decl{}, fmt.Errorf("%w: line %d: binding %s has no body", ErrMalformedDeclaration, lineNumber, name)
		}

		inferred, ok := inferLiteralType(body)
		if !ok {
			return Decl{}, fmt.Errorf("%w: line %d: binding %s has no annotation and no literal body", ErrCannotInferType, lineNumber, name)
		}

		decl.Type = inferred
	}

	return decl, nil
}

// appendRecordFields collects `name : type` fields found on one record body
// line. A doc comment preceding the line attaches to its first field.
func appendRecordFields(fields []RecordField, line, comment string) []RecordField {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "{")
	line = strings.TrimSuffix(strings.TrimSpace(line), "}")
	line = strings.TrimSuffix(strings.TrimSpace(line), ",")

	for index, chunk := range strings.Split(line, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		colonIndex := strings.Index(chunk, ":")
		if colonIndex < 0 {
			continue
		}

		fieldName := strings.TrimSpace(chunk[:colonIndex])
		if !isIdentifier(fieldName) {
			continue
		}

		field := RecordField{
			Name: fieldName,
			Type: strings.TrimSpace(chunk[colonIndex+1:]),
		}
		if index == 0 {
			field.Comment = comment
		}

		fields = append(fields, field)
	}

	return fields
}

// inferLiteralType infers the type of a literal binding body.
func inferLiteralType(body string) (string, bool) {
	switch {
	case strings.HasPrefix(body, `"`):
		return "String", true
	case body == "true" || body == "false":
		return "Bool", true
	case isIntegerLiteral(body):
		return "Int", true
	case isFloatLiteral(body):
		return "Float", true
	default:
		return "", false
	}
}

// isIntegerLiteral reports whether text is a decimal integer literal.
func isIntegerLiteral(text string) bool {
	text = strings.TrimPrefix(text, "-")
	if text == "" {
		return false
	}

	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// isFloatLiteral reports whether text is a decimal float literal.
func isFloatLiteral(text string) bool {
	dotIndex := strings.Index(text, ".")
	if dotIndex < 0 {
		return false
	}

	return isIntegerLiteral(text[:dotIndex]) && isIntegerLiteral(text[dotIndex+1:])
}

// docCommentText strips the doc comment marker and one leading space.
func docCommentText(line string) string {
	text := strings.TrimPrefix(line, docCommentPrefix)
	return strings.TrimPrefix(text, " ")
}

// joinDocComment joins accumulated doc comment lines into one comment body.
func joinDocComment(lines []string) string {
	return strings.Join(lines, "\n")
}

// braceDelta returns the brace nesting change contributed by one line.
func braceDelta(text string) int {
	return strings.Count(text, "{") - strings.Count(text, "}")
}

// isIdentifier reports whether text is a bare fen identifier.
func isIdentifier(text string) bool {
	for index, r := range text {
		if index == 0 {
			if !isIdentStart(r) {
				return false
			}

			continue
		}

		if !isIdentRune(r) {
			return false
		}
	}

	return text != ""
}

// isIdentStart reports whether r can start an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentRune reports whether r can continue an identifier.
func isIdentRune(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
