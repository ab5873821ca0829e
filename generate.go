// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// GenerateForPath runs the full documentation pipeline over the source tree
// at inputRoot and writes one page per documentable file into the mirrored
// tree under outputRoot.
//
// Files are processed sequentially in walk order. The first error at any
// stage aborts the whole run; pages already written for earlier files remain
// on disk.
func GenerateForPath(ctx Context, inputRoot, outputRoot string) error {
	paths, err := Walk(inputRoot)
	if err != nil {
		return err
	}

	for _, relPath := range paths {
		typ, meta, err := Extract(ctx, inputRoot, relPath)
		if err != nil {
			return err
		}

		moduleName := PathModuleName(relPath)

		var page bytes.Buffer
		if err := Generate(&page, moduleName, typ, meta); err != nil {
			return err
		}

		if err := writeModuleDoc(outputRoot, relPath, page.Bytes()); err != nil {
			return err
		}

		slog.Debug("Generated module documentation",
			slog.String("module", moduleName),
			slog.String("source", relPath))
	}

	return nil
}

// writeModuleDoc persists one rendered page at the mirrored output path with
// the source extension swapped for the output extension. Parent directories
// are created as needed; existing pages are overwritten.
func writeModuleDoc(outputRoot, relPath string, page []byte) error {
	outPath := filepath.Join(outputRoot, strings.TrimSuffix(relPath, SourceExt)+OutputExt)

	outDir := filepath.Dir(outPath)
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("%w %q: %w", ErrCreateOutputDir, outDir, err)
	}

	if err := os.WriteFile(outPath, page, 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutputFile, outPath, err)
	}

	return nil
}
