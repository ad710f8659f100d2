package models

import "encoding/json"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success envelope of POST /login. The user profile is
// kept as raw JSON: the client treats it as opaque apart from the display
// name fields parsed later via [ParseUser].
type LoginResponse struct {
	Data struct {
		User        json.RawMessage `json:"user"`
		AccessToken string          `json:"access_token"`
	} `json:"data"`
}

// DeviceKeyListResponse is the envelope of GET /device-key.
type DeviceKeyListResponse struct {
	Data []DeviceKey `json:"data"`
}
