package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/mock"
	"github.com/dmrc-hht/keyadmin/internal/store"
	"github.com/dmrc-hht/keyadmin/internal/validators"
	"github.com/dmrc-hht/keyadmin/models"
)

// newTestSessionSvc wires a clientSessionService with mocked repository and
// adapter and the real validator.
func newTestSessionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientSessionService,
	*mock.MockSessionRepository,
	*mock.MockServerAdapter,
) {
	t.Helper()
	mockRepo := mock.NewMockSessionRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientSessionService(mockRepo, mockAdapter, validators.NewDeviceKeyValidator(), logger.Nop()).(*clientSessionService)

	return svc, mockRepo, mockAdapter
}

func signedTestToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientSessionService_Restore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	session := models.Session{
		User:        []byte(`{"first_name":"Dana","last_name":"Reyes"}`),
		AccessToken: "token-123",
	}

	gomock.InOrder(
		mockRepo.EXPECT().GetSession(ctx).Return(session, nil),
		mockAdapter.EXPECT().SetToken("token-123"),
	)

	user, ok, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Dana Reyes", user.DisplayName())
	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "Dana", svc.CurrentUser().FirstName)
}

func TestClientSessionService_Restore_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrSessionNotFound)

	_, ok, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, svc.IsAuthenticated())
}

func TestClientSessionService_Restore_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetSession(ctx).Return(models.Session{}, errors.New("disk error"))

	_, ok, err := svc.Restore(ctx)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "load stored session")
}

func TestClientSessionService_Restore_MalformedUserForcesLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	session := models.Session{
		User:        []byte(`{not json at all`),
		AccessToken: "token-123",
	}

	gomock.InOrder(
		mockRepo.EXPECT().GetSession(ctx).Return(session, nil),
		// the unreadable session gets discarded, not surfaced as an error
		mockRepo.EXPECT().DeleteSession(ctx).Return(nil),
	)

	_, ok, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, svc.IsAuthenticated())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	rawUser := []byte(`{"first_name":"Dana","last_name":"Reyes","id":7}`)

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "dana@example.com", "s3cret").Return(rawUser, "token-123", nil),
		mockRepo.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, session models.Session) error {
				// the session must round-trip the backend payload verbatim
				assert.JSONEq(t, string(rawUser), string(session.User))
				assert.Equal(t, "token-123", session.AccessToken)
				return nil
			},
		),
	)

	user, err := svc.Login(ctx, "dana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.FirstName)
	assert.True(t, svc.IsAuthenticated())
}

func TestClientSessionService_Login_ValidationStopsBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no adapter or repo expectations: an invalid form must not produce
	// any calls at all
	svc, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "s3cret")
	require.ErrorIs(t, err, validators.ErrEmptyEmail)

	_, err = svc.Login(ctx, "dana@example.com", "")
	require.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestClientSessionService_Login_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "dana@example.com", "wrong").Return(nil, "", errors.New("401"))

	_, err := svc.Login(ctx, "dana@example.com", "wrong")
	require.ErrorIs(t, err, ErrLoginOnServer)
	assert.False(t, svc.IsAuthenticated())
}

func TestClientSessionService_Login_PersistFailureStillLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "dana@example.com", "s3cret").
		Return([]byte(`{"first_name":"Dana"}`), "token-123", nil)
	mockRepo.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full"))

	user, err := svc.Login(ctx, "dana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.FirstName)
	assert.True(t, svc.IsAuthenticated())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// login first so there is state to clear
	mockAdapter.EXPECT().Login(ctx, "dana@example.com", "s3cret").
		Return([]byte(`{"first_name":"Dana"}`), "token-123", nil)
	mockRepo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "dana@example.com", "s3cret")
	require.NoError(t, err)

	gomock.InOrder(
		mockRepo.EXPECT().DeleteSession(ctx).Return(nil),
		mockAdapter.EXPECT().SetToken(""),
	)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.CurrentUser().FirstName)
}

func TestClientSessionService_Logout_DeleteErrorStillClearsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteSession(ctx).Return(errors.New("db locked"))
	mockAdapter.EXPECT().SetToken("")

	err := svc.Logout(ctx)
	require.Error(t, err)
	assert.False(t, svc.IsAuthenticated())
}

// ── TokenExpiry ──────────────────────────────────────────────────────────────

func TestClientSessionService_TokenExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)

	t.Run("jwt token with exp claim", func(t *testing.T) {
		wantExpiry := time.Now().Add(time.Hour).Truncate(time.Second)
		mockAdapter.EXPECT().Token().Return(signedTestToken(t, wantExpiry))

		expiry, ok := svc.TokenExpiry()
		require.True(t, ok)
		assert.WithinDuration(t, wantExpiry, expiry, time.Second)
	})

	t.Run("opaque token", func(t *testing.T) {
		mockAdapter.EXPECT().Token().Return("not-a-jwt")

		_, ok := svc.TokenExpiry()
		assert.False(t, ok)
	})

	t.Run("no token", func(t *testing.T) {
		mockAdapter.EXPECT().Token().Return("")

		_, ok := svc.TokenExpiry()
		assert.False(t, ok)
	})
}
