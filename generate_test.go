// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fenlang/fendoc"
	"github.com/fenlang/fendoc/checker"
)

func TestGenerateForPathRendersModulePage(t *testing.T) {
	t.Parallel()

	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeSourceFile(t, filepath.Join(inputRoot, "a", "b.fen"), `/// the foo
type Foo = Int

let bar : Int = 0
`)

	if err := fendoc.GenerateForPath(checker.New(), inputRoot, outputRoot); err != nil {
		t.Fatalf("GenerateForPath: %v", err)
	}

	page := readOutputFile(t, filepath.Join(outputRoot, "a", "b.html"))
	for _, needle := range []string{"a.b", "Foo", "the foo", "bar", "Int"} {
		if !strings.Contains(page, needle) {
			t.Fatalf("page does not contain %q:\n%s", needle, page)
		}
	}
}

func TestGenerateForPathMirrorsTree(t *testing.T) {
	t.Parallel()

	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeSourceFile(t, filepath.Join(inputRoot, "one.fen"), "let x : Int = 0\n")
	writeSourceFile(t, filepath.Join(inputRoot, "two.fen"), "let x : Int = 0\n")
	writeSourceFile(t, filepath.Join(inputRoot, "sub", "three.fen"), "let x : Int = 0\n")
	writeSourceFile(t, filepath.Join(inputRoot, "ignore.txt"), "not a module\n")
	writeSourceFile(t, filepath.Join(inputRoot, "sub", "ignore.md"), "not a module\n")

	if err := fendoc.GenerateForPath(checker.New(), inputRoot, outputRoot); err != nil {
		t.Fatalf("GenerateForPath: %v", err)
	}

	got := listOutputFiles(t, outputRoot)
	want := []string{
		"one.html",
		filepath.Join("sub", "three.html"),
		"two.html",
	}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("output files = %v, want %v", got, want)
	}
}

func TestGenerateForPathFailFastKeepsEarlierOutput(t *testing.T) {
	t.Parallel()

	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeSourceFile(t, filepath.Join(inputRoot, "a.fen"), "let x : Int = 0\n")
	writeSourceFile(t, filepath.Join(inputRoot, "b.fen"), "type Broken\n")
	writeSourceFile(t, filepath.Join(inputRoot, "c.fen"), "let y : Int = 1\n")

	err := fendoc.GenerateForPath(checker.New(), inputRoot, outputRoot)
	if !errors.Is(err, fendoc.ErrTypecheck) {
		t.Fatalf("error = %v, want ErrTypecheck", err)
	}

	if !strings.Contains(err.Error(), "b.fen") {
		t.Fatalf("error does not name the offending file: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(outputRoot, "a.html")); statErr != nil {
		t.Fatalf("earlier output missing: %v", statErr)
	}

	for _, name := range []string{"b.html", "c.html"} {
		if _, statErr := os.Stat(filepath.Join(outputRoot, name)); !errors.Is(statErr, fs.ErrNotExist) {
			t.Fatalf("output %s should not exist: %v", name, statErr)
		}
	}
}

func TestGenerateForPathOverwritesExistingOutput(t *testing.T) {
	t.Parallel()

	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeSourceFile(t, filepath.Join(inputRoot, "mod.fen"), "let x : Int = 0\n")

	for i := 0; i < 2; i++ {
		if err := fendoc.GenerateForPath(checker.New(), inputRoot, outputRoot); err != nil {
			t.Fatalf("GenerateForPath: %v", err)
		}
	}

	page := readOutputFile(t, filepath.Join(outputRoot, "mod.html"))
	if !strings.Contains(page, "mod") {
		t.Fatalf("page does not contain module name:\n%s", page)
	}
}

func TestGenerateForPathResolvedValueTypes(t *testing.T) {
	t.Parallel()

	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeSourceFile(t, filepath.Join(inputRoot, "alias.fen"), `type Count = Int

let total : Count = 0
`)

	if err := fendoc.GenerateForPath(checker.New(), inputRoot, outputRoot); err != nil {
		t.Fatalf("GenerateForPath: %v", err)
	}

	page := readOutputFile(t, filepath.Join(outputRoot, "alias.html"))
	if !strings.Contains(page, "type Count = Int") {
		t.Fatalf("unresolved alias text missing:\n%s", page)
	}

	if !strings.Contains(page, "let total : Int") {
		t.Fatalf("resolved value text missing:\n%s", page)
	}
}

func writeSourceFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readOutputFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}

func listOutputFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		t.Fatalf("walk output root: %v", err)
	}

	sort.Strings(files)
	return files
}
