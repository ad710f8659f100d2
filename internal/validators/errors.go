package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail     = errors.New("email is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyKey       = errors.New("key is required")
	ErrInvalidKeyType = errors.New("invalid key type")
	ErrMissingIV      = errors.New("iv is required for this key type")
	ErrUnexpectedIV   = errors.New("iv is not allowed for this key type")
)
