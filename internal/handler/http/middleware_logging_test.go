// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// logLines decodes every JSON line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	scanner := bufio.NewScanner(buf)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func findLine(lines []map[string]any, message string) map[string]any {
	for _, line := range lines {
		if line["message"] == message {
			return line
		}
	}
	return nil
}

func serveLogged(h *Handler, req *http.Request, next http.HandlerFunc) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.withRequestID(h.withLogging(next)).ServeHTTP(rr, req)
	return rr
}

func TestWithLogging_RequestAndResponseLines(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	req := httptest.NewRequest(http.MethodPost, "/item/create/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Cookie", "session=secret")
	req.Header.Set("X-Custom", "visible")
	req.Header.Set(requestIDHeader, "rid-1")

	serveLogged(h, req, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	raw := buf.String()
	assert.NotContains(t, raw, "secret-token")
	assert.NotContains(t, raw, "session=secret")

	lines := logLines(t, &buf)
	received := findLine(lines, "request received")
	require.NotNil(t, received)
	assert.Equal(t, "rid-1", received["request_id"])
	assert.Equal(t, "POST", received["method"])
	assert.Equal(t, "/item/create/", received["path"])

	sent := findLine(lines, "response sent")
	require.NotNil(t, sent)
	assert.Equal(t, "rid-1", sent["request_id"])
	assert.EqualValues(t, http.StatusCreated, sent["status_code"])
	assert.Contains(t, sent, "duration_ms")
	assert.Equal(t, `{"name":"x"}`, sent["request_body"])

	headers, ok := sent["request_headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, redactedValue, headers["Authorization"])
	assert.Equal(t, redactedValue, headers["Cookie"])
	assert.Equal(t, "visible", headers["X-Custom"])
}

func TestWithLogging_BodyPreview(t *testing.T) {
	large := `{"description":"` + strings.Repeat("a", 5000) + `"}`

	tests := []struct {
		name        string
		contentType string
		body        string
		wantPreview bool
		previewLen  int
	}{
		{name: "json is previewed", contentType: "application/json", body: `{"a":1}`, wantPreview: true, previewLen: 7},
		{name: "form is previewed", contentType: "application/x-www-form-urlencoded", body: "a=1", wantPreview: true, previewLen: 3},
		{name: "large body is truncated", contentType: "application/json; charset=utf-8", body: large, wantPreview: true, previewLen: maxBodyPreviewBytes},
		{name: "plain text is not previewed", contentType: "text/plain", body: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			var downstream []byte
			serveLogged(h, req, func(w http.ResponseWriter, r *http.Request) {
				downstream, _ = io.ReadAll(r.Body)
				w.WriteHeader(http.StatusOK)
			})

			assert.Equal(t, tt.body, string(downstream), "handler must see the whole body")

			sent := findLine(logLines(t, &buf), "response sent")
			require.NotNil(t, sent)
			preview, ok := sent["request_body"].(string)
			assert.Equal(t, tt.wantPreview, ok)
			if tt.wantPreview {
				assert.Len(t, preview, tt.previewLen)
			}
		})
	}
}

func TestWithLogging_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	serveLogged(h, httptest.NewRequest(http.MethodGet, "/health", nil), func(http.ResponseWriter, *http.Request) {})

	sent := findLine(logLines(t, &buf), "response sent")
	require.NotNil(t, sent)
	assert.EqualValues(t, http.StatusOK, sent["status_code"])
}

func TestRedactHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("authorization", "Bearer x")
	headers.Set("SET-COOKIE", "a=b")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "application/json")

	got := redactHeaders(headers)

	assert.Equal(t, map[string]string{
		"Authorization": redactedValue,
		"Set-Cookie":    redactedValue,
		"Accept":        "text/html, application/json",
	}, got)
}
