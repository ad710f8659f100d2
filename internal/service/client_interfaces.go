// Package service holds the client-side business logic sitting between the
// terminal UI and the transport/storage layers: session lifecycle and
// device-key management.
package service

import (
	"context"
	"time"

	"github.com/dmrc-hht/keyadmin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientSessionService manages the authenticated session: logging in,
// restoring a persisted session at startup, and logging out. The stored
// session is the source of truth across restarts; the in-memory state is
// the source of truth within a run.
type ClientSessionService interface {
	// Restore loads the persisted session, if any, and primes the adapter
	// with its token. It returns the restored user and true when a usable
	// session was found. An absent session is not an error. A stored
	// session whose user payload cannot be parsed is discarded (forced
	// logout) and reported as no session.
	Restore(ctx context.Context) (models.User, bool, error)

	// Login validates the credentials locally, authenticates against the
	// backend, persists the resulting session, and returns the user
	// profile. Local validation failures surface as validators package
	// errors without any network traffic.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout removes the persisted session, clears the adapter token, and
	// resets the in-memory state.
	Logout(ctx context.Context) error

	// CurrentUser returns the user of the active session, or the zero
	// value when not authenticated.
	CurrentUser() models.User

	// IsAuthenticated reports whether a session is active.
	IsAuthenticated() bool

	// TokenExpiry returns the expiry time extracted from the session
	// token, if the token is a JWT carrying one. The claim is read without
	// signature verification and is informational only; the backend's 401
	// responses remain the sole authority on token validity.
	TokenExpiry() (time.Time, bool)
}

// ClientDeviceKeyService manages the device-key collection through the
// backend. All write operations validate their input locally first; an
// invalid request never reaches the network.
type ClientDeviceKeyService interface {
	// List fetches the full device-key collection.
	List(ctx context.Context) ([]models.DeviceKey, error)

	// Create validates and submits a new device key.
	Create(ctx context.Context, req models.CreateDeviceKeyRequest) error

	// Update validates and submits a full replacement of the device key
	// identified by id.
	Update(ctx context.Context, id int64, req models.UpdateDeviceKeyRequest) error

	// Delete removes the device key identified by id.
	Delete(ctx context.Context, id int64) error
}
