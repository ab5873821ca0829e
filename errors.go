// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package fendoc

import "errors"

var (
	// ErrWalkInputDir is returned when input tree enumeration fails.
	ErrWalkInputDir = errors.New("walk input directory")
	// ErrReadSourceFile is returned when source file loading fails.
	ErrReadSourceFile = errors.New("read source file")
	// ErrInvalidEncoding is returned when a source path or its content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("source is not valid UTF-8")
	// ErrTypecheck wraps errors surfaced by the checking context for one file.
	ErrTypecheck = errors.New("typecheck module")
	// ErrExecuteTemplate is returned when module template execution fails.
	ErrExecuteTemplate = errors.New("execute module template")
	// ErrReadTemplate is returned when embedded module template loading fails.
	ErrReadTemplate = errors.New("read module template")
	// ErrCreateOutputDir is returned when output directory creation fails.
	ErrCreateOutputDir = errors.New("create output directory")
	// ErrWriteOutputFile is returned when output file writing fails.
	ErrWriteOutputFile = errors.New("write output file")
)
