// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey          string   `json:"token_sign_key"`
		TokenSigningAlgorithm string   `json:"token_signing_algorithm"`
		TokenDuration         Duration `json:"token_duration"`
		PasswordHashKey       string   `json:"password_hash_key"`
		PasswordHashCost      int      `json:"password_hash_cost"`
		Debug                 bool     `json:"debug"`
		LogLevel              string   `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Storage struct {
		Driver   string `json:"driver"`
		DynamoDB struct {
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			UsersTable      string `json:"users_table"`
			ItemsTable      string `json:"items_table"`
			UsernameIndex   string `json:"username_index"`
			OwnerIndex      string `json:"owner_index"`
		} `json:"dynamodb,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	db := jsonCfg.Storage.DynamoDB
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:          jsonCfg.App.TokenSignKey,
			TokenSigningAlgorithm: jsonCfg.App.TokenSigningAlgorithm,
			TokenDuration:         time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashKey:       jsonCfg.App.PasswordHashKey,
			PasswordHashCost:      jsonCfg.App.PasswordHashCost,
			Debug:                 jsonCfg.App.Debug,
			LogLevel:              jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DynamoDB: DynamoDB{
				Region:          db.Region,
				Endpoint:        db.Endpoint,
				AccessKeyID:     db.AccessKeyID,
				SecretAccessKey: db.SecretAccessKey,
				UsersTable:      db.UsersTable,
				ItemsTable:      db.ItemsTable,
				UsernameIndex:   db.UsernameIndex,
				OwnerIndex:      db.OwnerIndex,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
