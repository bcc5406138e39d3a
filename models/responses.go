// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the uniform JSON envelope of every failed request.
type ErrorResponse struct {
	// Detail is either a message string or a list of field errors.
	Detail any `json:"detail"`

	// Type is the failure kind name. Populated only for unexpected
	// failures while debug mode is on.
	Type string `json:"type,omitempty"`

	// AWSErrorCode is the raw provider code of a failed store operation.
	AWSErrorCode string `json:"aws_error_code,omitempty"`

	// RequestID is the correlation id of the request.
	RequestID string `json:"request_id"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
