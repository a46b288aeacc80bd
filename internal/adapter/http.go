// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/utils"
	"github.com/MKhiriev/account-vault/models"
	"github.com/go-resty/resty/v2"
)

const accountsPath = "/api/accounts"

type httpRecordStore struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPRecordStore constructs an HTTP/REST implementation of
// [RecordStore]. It normalises and validates cfg.ServerAddress, configures
// the underlying HTTP client with the resolved base URL and request timeout,
// and initialises the shared HMAC hasher pool used for the request integrity
// header.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRecordStore(cfg *config.ClientConfig, logger *logger.Logger) (RecordStore, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	return &httpRecordStore{client: client, hashKey: cfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// Store implements [RecordStore]. It POSTs rec to POST /api/accounts and
// decodes the created record from the 201 response. When a hash key is
// configured the body is signed in the HashSHA256 header.
func (h *httpRecordStore) Store(ctx context.Context, rec models.NewRecord) (models.Record, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return models.Record{}, fmt.Errorf("encode record: %w", err)
	}

	var created models.Record
	resp, err := h.signedRequest(ctx, body).
		SetResult(&created).
		Post(accountsPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("store request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	h.logger.Debug().Str("func", "httpRecordStore.Store").Str("id", created.ID).Msg("record stored")
	return created, nil
}

// FetchAll implements [RecordStore]. It GETs /api/accounts and decodes the
// record list as returned by the server, newest first.
func (h *httpRecordStore) FetchAll(ctx context.Context) ([]models.Record, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("fetch all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode fetch all response: %w", err)
	}

	return records, nil
}

// Delete implements [RecordStore]. It sends DELETE /api/accounts/{id}.
func (h *httpRecordStore) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(accountsPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Ping implements [RecordStore] using GET /api/debug/db.
func (h *httpRecordStore) Ping(ctx context.Context) error {
	var health models.HealthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/debug/db")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !health.OK {
		return ErrStorageUnavailable
	}

	return nil
}

// Version implements [RecordStore] using GET /api/version.
func (h *httpRecordStore) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpRecordStore) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, hex.EncodeToString(utils.Hash(body)))
	}
	return req
}
