// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line API client.
type ClientConfig struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is an optional access token used for authenticated commands.
	Token string
}

// GetClientConfig builds and validates the client configuration.
//
// Global client flags are parsed from args (-a, -timeout, -token); values
// not given on the command line come from ADAPTER_* environment variables
// and then from built-in defaults. The remaining positional arguments (the
// command and its operands) are returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	flagCfg := &StructuredConfig{}
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Server base URL (e.g. http://localhost:8080)")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g. 10s)")
	fs.StringVar(&flagCfg.Adapter.Token, "token", "", "Access token")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, flagCfg)
	cfg, err := b.withEnv().withDefaults().merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
	}

	return clientCfg, fs.Args(), clientCfg.validate()
}
