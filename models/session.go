package models

import "encoding/json"

// Session is the durable client session: the access token plus the user
// profile exactly as the backend serialised it at login time.
type Session struct {
	User        json.RawMessage
	AccessToken string
}

// IsComplete reports whether both session halves are present. A session with
// either half missing cannot authenticate the UI and must be discarded.
func (s Session) IsComplete() bool {
	return len(s.User) > 0 && s.AccessToken != ""
}
