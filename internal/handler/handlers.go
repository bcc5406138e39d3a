// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/handler/http"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/service"
)

// Handlers groups the transport handlers served by the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers. An empty HTTP address leaves
// nothing to serve and is reported as errNoHandlersAreCreated.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Server, cfg.App.Debug, logger),
	}, nil
}
