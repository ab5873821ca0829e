// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

// Module is the documentation unit for one source file.
type Module struct {
	Name   string
	Record Record
}

// Record holds the ordered documentation fields of one module.
type Record struct {
	Types  []Field
	Values []Field
}

// Field is a single documented declaration.
type Field struct {
	Name    string
	Type    string
	Comment string
}

// NewRecord builds the documentation record for a checked module type.
//
// Type-level fields keep their declaration order and unresolved type text;
// value-level fields keep their row order and resolved type text. Names are
// not deduplicated: duplicate fields in the underlying type pass through as
// duplicate entries. NewRecord is pure and safe for concurrent use on
// disjoint inputs.
func NewRecord(typ Type, meta *Metadata) Record {
	typeFields := typ.TypeFields()
	valueFields := typ.ValueFields()

	record := Record{
		Types:  make([]Field, 0, len(typeFields)),
		Values: make([]Field, 0, len(valueFields)),
	}

	for _, entry := range typeFields {
		record.Types = append(record.Types, Field{
			Name:    entry.Name,
			Type:    entry.Type,
			Comment: fieldComment(meta, entry.Name),
		})
	}

	for _, entry := range valueFields {
		record.Values = append(record.Values, Field{
			Name:    entry.Name,
			Type:    entry.Type,
			Comment: fieldComment(meta, entry.Name),
		})
	}

	return record
}

// fieldComment returns the metadata comment for one field name, or empty
// string when the tree has no entry for it.
func fieldComment(meta *Metadata, name string) string {
	if meta == nil {
		return ""
	}

	entry, ok := meta.Module[name]
	if !ok || entry == nil {
		return ""
	}

	return entry.Comment
}
