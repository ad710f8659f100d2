// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmrc-hht/keyadmin/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrIV(s string) *string { return &s }

func validCreateRequest() models.CreateDeviceKeyRequest {
	return models.CreateDeviceKeyRequest{
		Key:  "AAAA",
		Type: models.TypeApp1,
	}
}

func validUpdateRequest() models.UpdateDeviceKeyRequest {
	return models.UpdateDeviceKeyRequest{
		Key:  "BBBB",
		Type: models.TypeQRMoLV,
		IV:   ptrIV("0011223344"),
	}
}

// ---------------------------------------------------------------------------
// TestNewDeviceKeyValidator
// ---------------------------------------------------------------------------

func TestNewDeviceKeyValidator(t *testing.T) {
	v := NewDeviceKeyValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewDeviceKeyValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("LoginRequest value", func(t *testing.T) {
		err := v.Validate(ctx, models.LoginRequest{Email: "a@b.c", Password: "pw"})
		require.NoError(t, err)
	})

	t.Run("LoginRequest pointer", func(t *testing.T) {
		err := v.Validate(ctx, &models.LoginRequest{Email: "a@b.c", Password: "pw"})
		require.NoError(t, err)
	})

	t.Run("CreateDeviceKeyRequest value", func(t *testing.T) {
		r := validCreateRequest()
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("CreateDeviceKeyRequest pointer", func(t *testing.T) {
		r := validCreateRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("UpdateDeviceKeyRequest value", func(t *testing.T) {
		r := validUpdateRequest()
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("UpdateDeviceKeyRequest pointer", func(t *testing.T) {
		r := validUpdateRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("unknown field", func(t *testing.T) {
		r := validCreateRequest()
		require.ErrorIs(t, v.Validate(ctx, r, "nope"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_LoginRequest
// ---------------------------------------------------------------------------

func TestValidate_LoginRequest(t *testing.T) {
	v := NewDeviceKeyValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.LoginRequest
		fields  []string
		wantErr error
	}{
		{
			name:    "valid",
			request: models.LoginRequest{Email: "dana@example.com", Password: "s3cret"},
		},
		{
			name:    "empty email",
			request: models.LoginRequest{Password: "s3cret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "whitespace email",
			request: models.LoginRequest{Email: "   ", Password: "s3cret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "empty password",
			request: models.LoginRequest{Email: "dana@example.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "email scope skips password check",
			request: models.LoginRequest{Email: "dana@example.com"},
			fields:  []string{FieldEmail},
		},
		{
			name:    "password scope skips email check",
			request: models.LoginRequest{Password: "s3cret"},
			fields:  []string{FieldPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_DeviceKeyRequests
// ---------------------------------------------------------------------------

func TestValidate_DeviceKeyRequests(t *testing.T) {
	v := NewDeviceKeyValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		keyType models.KeyType
		iv      *string
		fields  []string
		wantErr error
	}{
		{
			name:    "valid without iv",
			key:     "AAAA",
			keyType: models.TypeApp1,
		},
		{
			name:    "valid with required iv",
			key:     "AAAA",
			keyType: models.TypeQRPPIV,
			iv:      ptrIV("0011223344"),
		},
		{
			name:    "empty key",
			key:     "  ",
			keyType: models.TypeApp1,
			wantErr: ErrEmptyKey,
		},
		{
			name:    "unknown type",
			key:     "AAAA",
			keyType: models.KeyType("made-up"),
			wantErr: ErrInvalidKeyType,
		},
		{
			name:    "missing iv for iv type",
			key:     "AAAA",
			keyType: models.TypeQRMoLV,
			wantErr: ErrMissingIV,
		},
		{
			name:    "blank iv for iv type",
			key:     "AAAA",
			keyType: models.TypeQRMoLV,
			iv:      ptrIV("   "),
			wantErr: ErrMissingIV,
		},
		{
			name:    "iv supplied for plain type",
			key:     "AAAA",
			keyType: models.TypeApp2,
			iv:      ptrIV("0011223344"),
			wantErr: ErrUnexpectedIV,
		},
		{
			name:    "key scope skips iv check",
			key:     "AAAA",
			keyType: models.TypeQRMoLV,
			fields:  []string{FieldKey},
		},
		{
			name:    "iv scope skips key check",
			key:     "",
			keyType: models.TypeApp1,
			fields:  []string{FieldIV},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := models.CreateDeviceKeyRequest{Key: tt.key, Type: tt.keyType, IV: tt.iv}
			update := models.UpdateDeviceKeyRequest{Key: tt.key, Type: tt.keyType, IV: tt.iv}

			for _, obj := range []any{create, update} {
				err := v.Validate(ctx, obj, tt.fields...)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					continue
				}
				require.NoError(t, err)
			}
		})
	}
}
