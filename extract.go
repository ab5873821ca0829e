// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extract reads one source file under inputRoot and adapts it through the
// checking context into its semantic type and doc-comment tree. Extract
// performs no semantic interpretation itself; collaborator errors propagate
// annotated with the offending path.
func Extract(ctx Context, inputRoot, relPath string) (Type, *Metadata, error) {
	fullPath := filepath.Join(inputRoot, relPath)

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrReadSourceFile, fullPath, err)
	}

	if !utf8.ValidString(fullPath) || !utf8.Valid(data) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, fullPath)
	}

	moduleName := PathModuleName(relPath)
	expr, typ, err := ctx.Typecheck(moduleName, string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrTypecheck, fullPath, err)
	}

	return typ, ctx.Metadata(expr), nil
}

// PathModuleName derives the module name from a source path: the source
// extension is dropped and path separators become dots, so "std/map.fen"
// names the module "std.map".
func PathModuleName(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimSuffix(path, SourceExt)
	path = strings.Trim(path, "/")
	return strings.ReplaceAll(path, "/", ".")
}
