// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

// Expr is an opaque checked expression produced by [Context.Typecheck] and
// consumed by [Context.Metadata]. The core never inspects it.
type Expr any

// FieldEntry is one named field of a module type together with its textual
// type representation.
type FieldEntry struct {
	Name string
	Type string
}

// Type is the semantic type of a checked module as seen by the documentation
// pipeline.
type Type interface {
	// TypeFields returns the type-level fields in declaration order. The
	// entry text is the unresolved representation, as written in source,
	// with aliases not expanded.
	TypeFields() []FieldEntry

	// ValueFields returns the value-level fields in row order. The entry
	// text is the resolved representation, with aliases expanded.
	ValueFields() []FieldEntry
}

// Metadata is a tree of doc comments keyed by declaration name. Structured
// declarations carry nested metadata for their own fields.
type Metadata struct {
	Comment string
	Module  map[string]*Metadata
}

// Context is the shared checking handle backing extraction. It is passed
// explicitly into every extraction call; implementations that are queried
// concurrently must either tolerate concurrent reads or be serialized by the
// caller.
type Context interface {
	// Typecheck checks one module's source text and returns its expression
	// handle and inferred type.
	Typecheck(moduleName, source string) (Expr, Type, error)

	// Metadata collects the doc-comment tree for a checked expression.
	Metadata(expr Expr) *Metadata
}
