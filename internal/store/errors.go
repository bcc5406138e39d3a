// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested id or
	// username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrItemNotFound is returned when no item matches the requested id,
	// including when the item vanished between a read and an update.
	ErrItemNotFound = errors.New("item was not found")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Codes used for failures that do not come from the provider itself.
const (
	CodeRequestTimeout  = "RequestTimeout"
	CodeRequestCanceled = "RequestCanceled"
	CodeInternalFailure = "InternalFailure"
	CodeSerialization   = "SerializationError"
)

// StoreError is the single error type surfaced for failed store operations.
// Code carries the provider's raw error code (e.g.
// "ProvisionedThroughputExceededException") for diagnostics.
type StoreError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %s: %s", e.Op, e.Code, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// classifyDynamoError wraps err, raised by operation op, into a [*StoreError].
// An err that already is a *StoreError is returned unchanged.
func classifyDynamoError(err error, op string) error {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	out := &StoreError{Op: op, Code: CodeInternalFailure, Message: err.Error(), Err: err}

	var apiErr smithy.APIError
	switch {
	case errors.As(err, &apiErr):
		out.Code = apiErr.ErrorCode()
		if msg := apiErr.ErrorMessage(); msg != "" {
			out.Message = msg
		}
	case errors.Is(err, context.DeadlineExceeded):
		out.Code = CodeRequestTimeout
	case errors.Is(err, context.Canceled):
		out.Code = CodeRequestCanceled
	}

	return out
}

// serializationError reports a record that could not be converted to or
// from attribute values.
func serializationError(err error, op string) error {
	return &StoreError{Op: op, Code: CodeSerialization, Message: err.Error(), Err: err}
}
