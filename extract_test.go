// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// fakeContext is a scripted Context implementation recording typecheck calls.
type fakeContext struct {
	typ        Type
	meta       *Metadata
	err        error
	moduleName string
	source     string
}

func (ctx *fakeContext) Typecheck(moduleName, source string) (Expr, Type, error) {
	ctx.moduleName = moduleName
	ctx.source = source
	if ctx.err != nil {
		return nil, nil, ctx.err
	}

	return "expr", ctx.typ, nil
}

func (ctx *fakeContext) Metadata(_ Expr) *Metadata {
	return ctx.meta
}

func TestExtractDerivesModuleName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a", "b.fen"), "let x : Int = 0\n")

	ctx := &fakeContext{typ: &fakeType{}, meta: &Metadata{Comment: "module doc"}}

	typ, meta, err := Extract(ctx, root, filepath.Join("a", "b.fen"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if ctx.moduleName != "a.b" {
		t.Fatalf("module name = %q, want %q", ctx.moduleName, "a.b")
	}

	if ctx.source != "let x : Int = 0\n" {
		t.Fatalf("source passed to typecheck = %q", ctx.source)
	}

	if typ == nil || meta == nil {
		t.Fatal("Extract returned nil type or metadata")
	}

	if meta.Comment != "module doc" {
		t.Fatalf("metadata comment = %q", meta.Comment)
	}
}

func TestExtractAnnotatesTypecheckError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "bad.fen"), "type Broken\n")

	ctx := &fakeContext{err: errors.New("expected =")}

	_, _, err := Extract(ctx, root, "bad.fen")
	if !errors.Is(err, ErrTypecheck) {
		t.Fatalf("error = %v, want ErrTypecheck", err)
	}

	if !strings.Contains(err.Error(), "bad.fen") {
		t.Fatalf("error does not name the offending file: %v", err)
	}

	if !strings.Contains(err.Error(), "expected =") {
		t.Fatalf("error drops the collaborator cause: %v", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	t.Parallel()

	ctx := &fakeContext{typ: &fakeType{}}

	_, _, err := Extract(ctx, t.TempDir(), "missing.fen")
	if !errors.Is(err, ErrReadSourceFile) {
		t.Fatalf("error = %v, want ErrReadSourceFile", err)
	}

	if !strings.Contains(err.Error(), "missing.fen") {
		t.Fatalf("error does not name the offending file: %v", err)
	}
}

func TestExtractRejectsInvalidEncoding(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "binary.fen"), "let x : Int = 0\xff\xfe\n")

	ctx := &fakeContext{typ: &fakeType{}}

	_, _, err := Extract(ctx, root, "binary.fen")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("error = %v, want ErrInvalidEncoding", err)
	}
}

func TestPathModuleName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"b.fen", "b"},
		{filepath.Join("a", "b.fen"), "a.b"},
		{filepath.Join("x", "y", "z.fen"), "x.y.z"},
	}

	for _, tc := range cases {
		if got := PathModuleName(tc.input); got != tc.want {
			t.Fatalf("PathModuleName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
