package store

import "errors"

var ErrSessionNotFound = errors.New("no stored session")
