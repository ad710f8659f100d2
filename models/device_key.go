package models

import "time"

// DeviceKey represents a single device credential record owned by the
// backend. The client never mutates a DeviceKey locally: every record held
// in memory is a read-through copy from the last successful list fetch.
type DeviceKey struct {
	// ID is the backend-assigned unique identifier of the record.
	ID int64 `json:"id"`

	// Key is the opaque credential value. Required, non-empty.
	Key string `json:"key"`

	// Type is the enumerated device-key type. Membership in the
	// IV-required subset determines whether IV must be set.
	Type KeyType `json:"type"`

	// IV is the optional initialization vector. Non-nil exactly when Type
	// is in the IV-required subset; nil otherwise.
	IV *string `json:"iv,omitempty"`

	// CreatedAt is the backend-assigned creation timestamp. Display only.
	CreatedAt time.Time `json:"created_at"`
}

// CreateDeviceKeyRequest is the body of POST /device-key. IV is omitted
// from the wire entirely when nil, matching the contract for non-IV types.
type CreateDeviceKeyRequest struct {
	Key  string  `json:"key"`
	Type KeyType `json:"type"`
	IV   *string `json:"iv,omitempty"`
}

// UpdateDeviceKeyRequest is the body of PUT /device-key/{id}. Unlike the
// create request, IV is always serialised: an explicit JSON null clears a
// previously stored value when the type no longer requires one. Omitting
// the field must not be relied upon to clear it server-side.
type UpdateDeviceKeyRequest struct {
	Key  string  `json:"key"`
	Type KeyType `json:"type"`
	IV   *string `json:"iv"`
}
