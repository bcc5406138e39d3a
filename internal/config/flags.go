// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-signing-algorithm HS256, HS384 or HS512
//	-token-duration token duration (e.g., "1h", "30m"), 0 for no expiry
//	-password-hash-key password pepper
//	-password-hash-cost bcrypt cost
//	-debug expose unexpected errors in responses
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-storage-driver dynamodb or memory
//	-dynamodb-region, -dynamodb-endpoint, -users-table, -items-table
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var allowedOrigins string
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenSigningAlgorithm, "token-signing-algorithm", "", "Token signing algorithm (HS256, HS384, HS512)")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "Password hash key")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "Password bcrypt cost")
	fs.BoolVar(&cfg.App.Debug, "debug", false, "Expose unexpected errors in responses")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&cfg.Storage.Driver, "storage-driver", "", "Storage driver (dynamodb, memory)")
	fs.StringVar(&cfg.Storage.DynamoDB.Region, "dynamodb-region", "", "DynamoDB region")
	fs.StringVar(&cfg.Storage.DynamoDB.Endpoint, "dynamodb-endpoint", "", "DynamoDB endpoint override")
	fs.StringVar(&cfg.Storage.DynamoDB.UsersTable, "users-table", "", "Users table name")
	fs.StringVar(&cfg.Storage.DynamoDB.ItemsTable, "items-table", "", "Items table name")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.AllowedOrigins = splitList(allowedOrigins)

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
