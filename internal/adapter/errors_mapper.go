// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-item-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := describe(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

// describe renders the error envelope of resp as text. Bodies that are not an
// envelope are returned as they are.
func describe(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope.Detail == nil {
		if body == "" {
			return http.StatusText(resp.StatusCode())
		}
		return body
	}

	var sb strings.Builder
	switch detail := envelope.Detail.(type) {
	case string:
		sb.WriteString(detail)
	default:
		raw, _ := json.Marshal(detail)
		sb.Write(raw)
	}
	if envelope.AWSErrorCode != "" {
		fmt.Fprintf(&sb, " [%s]", envelope.AWSErrorCode)
	}
	if envelope.RequestID != "" {
		fmt.Fprintf(&sb, " (request_id=%s)", envelope.RequestID)
	}
	return sb.String()
}
