// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

// Package checker is the reference checking context for fen source text.
//
// It understands the declaration surface of a fen module: `type Name = ...`
// aliases, `let name : Type = ...` bindings, and `///` doc comments. The
// inferred module type exposes type-level fields with their unresolved text
// and value-level fields with module-local aliases expanded, which is exactly
// the shape the fendoc pipeline documents.
package checker

import (
	"github.com/fenlang/fendoc"
)

// DeclKind discriminates module declarations.
type DeclKind int

const (
	// DeclType is a `type Name = ...` alias declaration.
	DeclType DeclKind = iota
	// DeclValue is a `let name ... = ...` binding declaration.
	DeclValue
)

// RecordField is one field of a record type body.
type RecordField struct {
	Name    string
	Type    string
	Comment string
}

// Decl is one parsed module declaration.
type Decl struct {
	Kind    DeclKind
	Name    string
	Type    string
	Comment string
	Fields  []RecordField
}

// SourceModule is the checked representation of one fen module. It serves as
// the opaque expression handle returned by Typecheck.
type SourceModule struct {
	Name  string
	Decls []Decl
}

// ModuleType is the inferred record type of one fen module.
type ModuleType struct {
	typeFields  []fendoc.FieldEntry
	valueFields []fendoc.FieldEntry
}

// TypeFields returns type-level fields in declaration order with unresolved text.
func (typ *ModuleType) TypeFields() []fendoc.FieldEntry {
	return typ.typeFields
}

// ValueFields returns value-level fields in row order with aliases expanded.
func (typ *ModuleType) ValueFields() []fendoc.FieldEntry {
	return typ.valueFields
}

// Checker implements fendoc.Context for fen source text. The zero value is
// ready to use and safe for concurrent queries.
type Checker struct{}

// New returns a ready checking context.
func New() *Checker {
	return &Checker{}
}

// Typecheck parses and checks one module's source text.
func (checker *Checker) Typecheck(moduleName, source string) (fendoc.Expr, fendoc.Type, error) {
	module, err := parseModule(moduleName, source)
	if err != nil {
		return nil, nil, err
	}

	typ, err := checkModule(module)
	if err != nil {
		return nil, nil, err
	}

	return module, typ, nil
}

// Metadata collects the doc-comment tree of a checked module. Record type
// declarations carry nested metadata for their own fields.
func (checker *Checker) Metadata(expr fendoc.Expr) *fendoc.Metadata {
	module, ok := expr.(*SourceModule)
	if !ok {
		return &fendoc.Metadata{}
	}

	meta := &fendoc.Metadata{
		Module: make(map[string]*fendoc.Metadata, len(module.Decls)),
	}

	for _, decl := range module.Decls {
		entry := &fendoc.Metadata{Comment: decl.Comment}
		if len(decl.Fields) > 0 {
			entry.Module = make(map[string]*fendoc.Metadata, len(decl.Fields))
			for _, field := range decl.Fields {
				entry.Module[field.Name] = &fendoc.Metadata{Comment: field.Comment}
			}
		}

		meta.Module[decl.Name] = entry
	}

	return meta
}
