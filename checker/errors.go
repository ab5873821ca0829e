// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package checker

import "errors"

var (
	// ErrMalformedDeclaration is returned when a declaration line cannot be parsed.
	ErrMalformedDeclaration = errors.New("malformed declaration")
	// ErrUnterminatedRecord is returned when a record type body is not closed.
	ErrUnterminatedRecord = errors.New("unterminated record type")
	// ErrCannotInferType is returned when an unannotated binding has no literal body.
	ErrCannotInferType = errors.New("cannot infer binding type")
	// ErrAliasCycle is returned when type alias expansion loops.
	ErrAliasCycle = errors.New("type alias cycle")
)
