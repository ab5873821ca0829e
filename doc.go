// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

/*
Package fendoc renders HTML documentation pages from checked fen modules.

The package converts a tree of fen source files into a mirrored tree of HTML
pages. For each source file it derives a documentation record (the module's
type-level and value-level fields, each paired with its doc comment) and
renders that record through the embedded module template.

Type checking and metadata collection are supplied by a [Context]
implementation; package checker provides the reference one.

Generate documentation for a whole source tree:

	err := fendoc.GenerateForPath(checker.New(), "std", "doc/std")
	if err != nil {
		return err
	}

Render a single module into any writer:

	var page bytes.Buffer
	err := fendoc.Generate(&page, "std.prelude", typ, meta)
	if err != nil {
		return err
	}

	fmt.Println(page.String())

Build a record without rendering it:

	record := fendoc.NewRecord(typ, meta)
	fmt.Println(len(record.Types), len(record.Values))

Inspect the embedded module template:

	text, err := fendoc.ModuleTemplate()
	if err != nil {
		return err
	}

	fmt.Println(len(text) > 0)
*/
package fendoc
