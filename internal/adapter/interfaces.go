// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

// Package adapter provides transport-layer abstractions for communicating
// with the device-key backend API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/dmrc-hht/keyadmin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the device-key
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login or a session restore.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for a session at POST /login. On success
	// it returns the serialized user profile exactly as the backend sent it
	// (the client treats it as opaque) together with the access token, and
	// stores the token via SetToken. Returns an error if the request fails,
	// the server responds with a non-2xx status, or the response envelope
	// cannot be decoded.
	Login(ctx context.Context, email, password string) (user json.RawMessage, token string, err error)

	// DeviceKeys fetches the full device-key collection from
	// GET /device-key. A null or missing data array decodes to an empty
	// slice. Requires a valid bearer token.
	DeviceKeys(ctx context.Context) ([]models.DeviceKey, error)

	// CreateDeviceKey creates a new record via POST /device-key. The iv
	// member is omitted from the wire entirely when req.IV is nil.
	// Requires a valid bearer token.
	CreateDeviceKey(ctx context.Context, req models.CreateDeviceKeyRequest) error

	// UpdateDeviceKey replaces the record identified by id via
	// PUT /device-key/{id}. The iv member is always serialised; a nil
	// req.IV is sent as an explicit JSON null so the backend clears any
	// previously stored value. Requires a valid bearer token.
	UpdateDeviceKey(ctx context.Context, id int64, req models.UpdateDeviceKeyRequest) error

	// DeleteDeviceKey removes the record identified by id via
	// DELETE /device-key/{id}. Requires a valid bearer token.
	DeleteDeviceKey(ctx context.Context, id int64) error
}
