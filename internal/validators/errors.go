// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedType is returned when the validated value is not a struct
	// or a pointer to a struct.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrValidationFailed is matched by every [*ValidationError].
	ErrValidationFailed = errors.New("validation failed")
)

// FieldError describes a single rejected input value. Loc is the path of the
// value inside the request (e.g. ["body", "username"]), Msg a human-readable
// explanation and Type a short machine-readable rule name.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError aggregates all field errors produced for one input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewBodyError reports a request body that could not be decoded at all.
func NewBodyError(err error) *ValidationError {
	return &ValidationError{Fields: []FieldError{{
		Loc:  []string{LocationBody},
		Msg:  err.Error(),
		Type: "json_invalid",
	}}}
}
