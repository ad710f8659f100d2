package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmrc-hht/keyadmin/internal/adapter"
	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/mock"
	"github.com/dmrc-hht/keyadmin/internal/validators"
	"github.com/dmrc-hht/keyadmin/models"
)

func newTestDeviceKeySvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientDeviceKeyService,
	*mock.MockServerAdapter,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientDeviceKeyService(mockAdapter, validators.NewDeviceKeyValidator(), logger.Nop()).(*clientDeviceKeyService)
	return svc, mockAdapter
}

func ivPtr(s string) *string { return &s }

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientDeviceKeyService_List_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	want := []models.DeviceKey{
		{ID: 1, Key: "AAAA", Type: models.TypeApp1},
		{ID: 2, Key: "BBBB", Type: models.TypeQRMoLV, IV: ivPtr("0011")},
	}

	mockAdapter.EXPECT().DeviceKeys(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientDeviceKeyService_List_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeviceKeys(ctx).Return(nil, adapter.ErrUnauthorized)

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientDeviceKeyService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateDeviceKeyRequest{Key: "AAAA", Type: models.TypeApp1}

	mockAdapter.EXPECT().CreateDeviceKey(ctx, req).Return(nil)

	require.NoError(t, svc.Create(ctx, req))
}

func TestClientDeviceKeyService_Create_ValidationStopsBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no adapter expectations: invalid requests never reach the transport
	svc, _ := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateDeviceKeyRequest
		wantErr error
	}{
		{
			name:    "empty key",
			req:     models.CreateDeviceKeyRequest{Type: models.TypeApp1},
			wantErr: validators.ErrEmptyKey,
		},
		{
			name:    "missing iv",
			req:     models.CreateDeviceKeyRequest{Key: "AAAA", Type: models.TypeQRPPIV},
			wantErr: validators.ErrMissingIV,
		},
		{
			name:    "unexpected iv",
			req:     models.CreateDeviceKeyRequest{Key: "AAAA", Type: models.TypeApp2, IV: ivPtr("0011")},
			wantErr: validators.ErrUnexpectedIV,
		},
		{
			name:    "bad type",
			req:     models.CreateDeviceKeyRequest{Key: "AAAA", Type: "nope"},
			wantErr: validators.ErrInvalidKeyType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, svc.Create(ctx, tt.req), tt.wantErr)
		})
	}
}

func TestClientDeviceKeyService_Create_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateDeviceKeyRequest{Key: "AAAA", Type: models.TypeApp1}
	mockAdapter.EXPECT().CreateDeviceKey(ctx, req).Return(adapter.ErrUnauthorized)

	require.ErrorIs(t, svc.Create(ctx, req), ErrSessionExpired)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientDeviceKeyService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	req := models.UpdateDeviceKeyRequest{Key: "BBBB", Type: models.TypeQRMoLV, IV: ivPtr("0011")}

	mockAdapter.EXPECT().UpdateDeviceKey(ctx, int64(42), req).Return(nil)

	require.NoError(t, svc.Update(ctx, 42, req))
}

func TestClientDeviceKeyService_Update_ValidationStopsBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	req := models.UpdateDeviceKeyRequest{Key: "BBBB", Type: models.TypeQRMoLV}

	require.ErrorIs(t, svc.Update(ctx, 42, req), validators.ErrMissingIV)
}

func TestClientDeviceKeyService_Update_NotFoundPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	req := models.UpdateDeviceKeyRequest{Key: "AAAA", Type: models.TypeApp1}
	mockAdapter.EXPECT().UpdateDeviceKey(ctx, int64(99), req).Return(adapter.ErrNotFound)

	require.ErrorIs(t, svc.Update(ctx, 99, req), adapter.ErrNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientDeviceKeyService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteDeviceKey(ctx, int64(7)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 7))
}

func TestClientDeviceKeyService_Delete_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestDeviceKeySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteDeviceKey(ctx, int64(7)).Return(errors.New("backend down"))

	err := svc.Delete(ctx, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete device key 7")
}
