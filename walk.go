// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

const (
	// SourceExt is the suffix of documentable fen source files.
	SourceExt = ".fen"
	// OutputExt is the suffix of generated documentation pages.
	OutputExt = ".html"
)

// Walk enumerates documentable source files under inputRoot and returns their
// paths relative to it, sorted for a stable processing order. Any read error
// during enumeration is fatal.
func Walk(inputRoot string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(inputRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || filepath.Ext(path) != SourceExt {
			return nil
		}

		relPath, err := filepath.Rel(inputRoot, path)
		if err != nil {
			return err
		}

		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrWalkInputDir, inputRoot, err)
	}

	sort.Strings(paths)
	return paths, nil
}
