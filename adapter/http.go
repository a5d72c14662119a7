// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/keywarden/vaultsync/config"
	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchSync implements [ServerAdapter]. It GETs /api/sync and decodes the
// full snapshot.
func (h *httpServerAdapter) FetchSync(ctx context.Context) (models.SyncSnapshot, error) {
	var snapshot models.SyncSnapshot

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&snapshot).
		Get("/api/sync")
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncSnapshot{}, err
	}

	return snapshot, nil
}

// LastRevision implements [ServerAdapter]. It GETs
// /api/accounts/revision-date, which returns the most recent account mutation
// as milliseconds since epoch, or an empty body when the server has no value.
func (h *httpServerAdapter) LastRevision(ctx context.Context) (time.Time, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		Get("/api/accounts/revision-date")
	if err != nil {
		return time.Time{}, false, fmt.Errorf("revision probe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, false, err
	}

	body := strings.Trim(strings.TrimSpace(string(resp.Body())), `"`)
	if body == "" || body == "null" {
		return time.Time{}, false, nil
	}

	millis, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("decode revision timestamp %q: %w", body, err)
	}

	return time.UnixMilli(millis).UTC(), true, nil
}

// FetchCipher implements [ServerAdapter].
func (h *httpServerAdapter) FetchCipher(ctx context.Context, id string) (models.Cipher, error) {
	var cipher models.Cipher

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&cipher).
		Get("/api/ciphers/" + url.PathEscape(id))
	if err != nil {
		return models.Cipher{}, fmt.Errorf("fetch cipher request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cipher{}, err
	}

	return cipher, nil
}

// FetchFolder implements [ServerAdapter].
func (h *httpServerAdapter) FetchFolder(ctx context.Context, id string) (models.Folder, error) {
	var folder models.Folder

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&folder).
		Get("/api/folders/" + url.PathEscape(id))
	if err != nil {
		return models.Folder{}, fmt.Errorf("fetch folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}

	return folder, nil
}

// FetchSend implements [ServerAdapter].
func (h *httpServerAdapter) FetchSend(ctx context.Context, id string) (models.Send, error) {
	var send models.Send

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&send).
		Get("/api/sends/" + url.PathEscape(id))
	if err != nil {
		return models.Send{}, fmt.Errorf("fetch send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Send{}, err
	}

	return send, nil
}
