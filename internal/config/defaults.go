// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults applied to fields that no other source has set.
const (
	DefaultHTTPAddress           = "localhost:8080"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultTokenSigningAlgorithm = "HS256"
	DefaultRegion                = "us-east-1"
	DefaultUsersTable            = "users"
	DefaultItemsTable            = "items"
	DefaultUsernameIndex         = "username-index"
	DefaultOwnerIndex            = "owner_id-index"
	DefaultAdapterAddress        = "http://localhost:8080"
	DefaultAdapterTimeout        = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSigningAlgorithm: DefaultTokenSigningAlgorithm,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Driver: DriverDynamoDB,
			DynamoDB: DynamoDB{
				Region:        DefaultRegion,
				UsersTable:    DefaultUsersTable,
				ItemsTable:    DefaultItemsTable,
				UsernameIndex: DefaultUsernameIndex,
				OwnerIndex:    DefaultOwnerIndex,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}

// resolveLogLevel fills App.LogLevel from the debug flag when it is unset.
func (cfg *StructuredConfig) resolveLogLevel() {
	if cfg.App.LogLevel != "" {
		return
	}
	if cfg.App.Debug {
		cfg.App.LogLevel = "debug"
		return
	}
	cfg.App.LogLevel = "info"
}
