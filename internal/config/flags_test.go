// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
		{
			name:     "IPv6 host is bracketed",
			addr:     NetAddress{Host: "::1", Port: 8080},
			expected: "[::1]:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Host: "", Port: 8080},
		},
		{
			name:         "valid IPv6",
			input:        "[::1]:8080",
			expectedAddr: NetAddress{Host: "::1", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// TestParseFlags tests the parseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-c", "/path/to/config.json",
				"-token-sign-key", "jwt_secret",
				"-token-signing-algorithm", "HS384",
				"-token-duration", "1h",
				"-password-hash-key", "pepper",
				"-password-hash-cost", "11",
				"-debug",
				"-log-level", "warn",
				"-request-timeout", "30s",
				"-allowed-origins", "http://a.example, http://b.example",
				"-storage-driver", "memory",
				"-dynamodb-region", "eu-north-1",
				"-dynamodb-endpoint", "http://localhost:8000",
				"-users-table", "u",
				"-items-table", "i",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
				assert.Equal(t, "HS384", cfg.App.TokenSigningAlgorithm)
				assert.Equal(t, time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, "pepper", cfg.App.PasswordHashKey)
				assert.Equal(t, 11, cfg.App.PasswordHashCost)
				assert.True(t, cfg.App.Debug)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, DriverMemory, cfg.Storage.Driver)
				assert.Equal(t, "eu-north-1", cfg.Storage.DynamoDB.Region)
				assert.Equal(t, "http://localhost:8000", cfg.Storage.DynamoDB.Endpoint)
				assert.Equal(t, "u", cfg.Storage.DynamoDB.UsersTable)
				assert.Equal(t, "i", cfg.Storage.DynamoDB.ItemsTable)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-a", "127.0.0.1:3000",
				"-token-sign-key", "secret",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
				assert.Equal(t, "secret", cfg.App.TokenSignKey)
				assert.Empty(t, cfg.Storage.Driver)
				assert.Nil(t, cfg.Server.AllowedOrigins)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid verifies that malformed flags are reported as errors
// instead of terminating the process.
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
		{name: "invalid duration", args: []string{"-token-duration", "soon"}},
		{name: "unknown flag", args: []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

// TestNetAddress_SetAndString tests the round-trip of Set and String
func TestNetAddress_SetAndString(t *testing.T) {
	for _, input := range []string{"localhost:8080", "127.0.0.1:9090", ":80"} {
		t.Run(input, func(t *testing.T) {
			addr := &NetAddress{}
			require.NoError(t, addr.Set(input))
			assert.Equal(t, input, addr.String())
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("   "))
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b,"))
}
