package models

import "encoding/json"

// User is the authenticated user's profile as returned by the backend's
// login endpoint. Only the name fields are interpreted by the client; the
// rest of the profile is carried opaquely in Raw so the stored session
// round-trips whatever the backend sent.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Raw is the original serialized profile. It is what gets persisted to
	// durable session storage, byte for byte.
	Raw json.RawMessage `json:"-"`
}

// ParseUser deserialises a user profile payload. The payload is retained
// verbatim in Raw alongside the parsed display fields.
func ParseUser(payload []byte) (User, error) {
	var u User
	if err := json.Unmarshal(payload, &u); err != nil {
		return User{}, err
	}
	u.Raw = append(json.RawMessage(nil), payload...)
	return u, nil
}

// DisplayName returns the user's full name for the welcome banner, or an
// empty string when the profile carries no name fields.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}
