package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmrc-hht/keyadmin/internal/config"
	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout. Every outbound request carries an
// X-Request-Id header for backend-side correlation.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", uuid.NewString())
			return nil
		})

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
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

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login
// and decodes the `{data: {user, access_token}}` envelope. The user profile
// is returned as raw JSON; only the token is interpreted. On success the
// token is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (json.RawMessage, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/login")
	if err != nil {
		return nil, "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	var envelope models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, "", fmt.Errorf("decode login response: %w", err)
	}
	if envelope.Data.AccessToken == "" || len(envelope.Data.User) == 0 {
		return nil, "", fmt.Errorf("login response missing user or access_token")
	}

	h.SetToken(envelope.Data.AccessToken)
	return envelope.Data.User, envelope.Data.AccessToken, nil
}

// DeviceKeys implements [ServerAdapter]. It GETs /device-key and decodes the
// `{data: [...]}` envelope. A null data array is returned as an empty,
// non-nil slice so callers can distinguish "loaded empty" from "never
// loaded".
func (h *httpServerAdapter) DeviceKeys(ctx context.Context) ([]models.DeviceKey, error) {
	resp, err := h.authedRequest(ctx).Get("/device-key")
	if err != nil {
		return nil, fmt.Errorf("list device keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.DeviceKeyListResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode device key list: %w", err)
	}

	if envelope.Data == nil {
		return []models.DeviceKey{}, nil
	}
	return envelope.Data, nil
}

// CreateDeviceKey implements [ServerAdapter]. It POSTs the new record to
// POST /device-key. The iv member is absent from the wire when req.IV is nil
// (the request struct tags carry omitempty).
func (h *httpServerAdapter) CreateDeviceKey(ctx context.Context, req models.CreateDeviceKeyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/device-key")
	if err != nil {
		return fmt.Errorf("create device key request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateDeviceKey implements [ServerAdapter]. It PUTs the full replacement
// record to PUT /device-key/{id}. A nil req.IV is serialised as an explicit
// JSON null: the backend must clear a previously stored IV when the type no
// longer requires one, and omission cannot be relied upon for that.
func (h *httpServerAdapter) UpdateDeviceKey(ctx context.Context, id int64, req models.UpdateDeviceKeyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/device-key/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("update device key request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteDeviceKey implements [ServerAdapter]. It sends
// DELETE /device-key/{id} with no body.
func (h *httpServerAdapter) DeleteDeviceKey(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/device-key/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete device key request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
