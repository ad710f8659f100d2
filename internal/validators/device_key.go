package validators

import (
	"context"
	"strings"

	"github.com/dmrc-hht/keyadmin/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email of a login request.
	FieldEmail = "email"

	// FieldPassword targets the password of a login request.
	FieldPassword = "password"

	// FieldKey targets the key material of a device-key request.
	FieldKey = "key"

	// FieldType targets the key type of a device-key request.
	FieldType = "type"

	// FieldIV targets the initialisation vector of a device-key request.
	// The IV rule is conditional on the key type: required for types that
	// need one, forbidden for types that do not.
	FieldIV = "iv"
)

// DeviceKeyValidator implements the Validator interface for the client's
// form-backed request models: LoginRequest, CreateDeviceKeyRequest and
// UpdateDeviceKeyRequest.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type DeviceKeyValidator struct {
}

// NewDeviceKeyValidator constructs a new DeviceKeyValidator and returns it
// as the Validator interface.
func NewDeviceKeyValidator() Validator {
	return &DeviceKeyValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.LoginRequest / *models.LoginRequest
//   - models.CreateDeviceKeyRequest / *models.CreateDeviceKeyRequest
//   - models.UpdateDeviceKeyRequest / *models.UpdateDeviceKeyRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// all fields of the model are validated.
func (v *DeviceKeyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CreateDeviceKeyRequest:
		return v.validateDeviceKeyFields(ctx, value.Key, value.Type, value.IV, fields...)
	case *models.CreateDeviceKeyRequest:
		return v.validateDeviceKeyFields(ctx, value.Key, value.Type, value.IV, fields...)

	case models.UpdateDeviceKeyRequest:
		return v.validateDeviceKeyFields(ctx, value.Key, value.Type, value.IV, fields...)
	case *models.UpdateDeviceKeyRequest:
		return v.validateDeviceKeyFields(ctx, value.Key, value.Type, value.IV, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateLoginRequest checks credential presence. Matching the backend's
// behaviour, no format rules are applied: the server is the authority on
// what a valid account looks like.
//
// Default validated fields: Email, Password.
func (v *DeviceKeyValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDeviceKeyFields validates the shared field set of create and
// update requests.
//
// Default validated fields: Key, Type, IV.
//
// The IV check is conditional: key types that carry an initialisation
// vector must provide a non-empty one, all other types must not provide
// one at all.
func (v *DeviceKeyValidator) validateDeviceKeyFields(_ context.Context, key string, keyType models.KeyType, iv *string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldType, FieldIV}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if strings.TrimSpace(key) == "" {
				return ErrEmptyKey
			}
		case FieldType:
			if !models.IsValidKeyType(keyType) {
				return ErrInvalidKeyType
			}
		case FieldIV:
			switch {
			case models.RequiresIV(keyType) && (iv == nil || strings.TrimSpace(*iv) == ""):
				return ErrMissingIV
			case !models.RequiresIV(keyType) && iv != nil && *iv != "":
				return ErrUnexpectedIV
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
