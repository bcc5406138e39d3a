// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/handler"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/server"
	"github.com/MKhiriev/go-item-keeper/internal/service"
	"github.com/MKhiriev/go-item-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("item-keeper-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("item-keeper-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("storage_driver", cfg.Storage.Driver).
		Bool("debug", cfg.App.Debug).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
