// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter creates a [ServerAdapter] for the server at
// cfg.HTTPAddress. An address without a scheme is treated as http. The token
// from cfg, if any, is used for authenticated requests.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if health.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", health.Status)
	}

	return nil
}

// Register POSTs the credentials to /user/register/ and keeps the returned
// access token for later requests.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/user/register/", credentials)
}

// Login POSTs the credentials to /user/login/ and keeps the returned access
// token for later requests.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/user/login/", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("%s: empty access token in response", path)
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("path", path).Msg("access token received")
	return token, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var msg models.MessageResponse
	resp, err := req.SetResult(&msg).Get("/user/profile/")
	if err != nil {
		return "", fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, itemReq models.ItemCreateRequest) (models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	var item models.Item
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(itemReq).
		SetResult(&item).
		Post("/item/create/")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	resp, err := req.SetResult(&items).Get("/item/read/")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, itemID string, itemReq models.ItemUpdateRequest) (models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	var item models.Item
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("itemID", itemID).
		SetBody(itemReq).
		SetResult(&item).
		Put("/item/update/{itemID}")
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("itemID", itemID).
		Delete("/item/delete/{itemID}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
