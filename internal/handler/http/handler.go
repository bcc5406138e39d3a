// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/service"
)

// Handler holds the dependencies shared by all routes and middlewares.
type Handler struct {
	services *service.Services

	allowedOrigins []string
	// debug exposes messages and types of unexpected failures to clients.
	debug bool

	logger *logger.Logger
}

// NewHandler creates a Handler. debug switches the error translator into
// the mode that reveals unexpected failure details.
func NewHandler(services *service.Services, cfg config.Server, debug bool, logger *logger.Logger) *Handler {
	logger.Info().Bool("debug", debug).Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		debug:          debug,
		logger:         logger,
	}
}
