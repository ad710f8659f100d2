package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmrc-hht/keyadmin/internal/adapter"
	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/store"
	"github.com/dmrc-hht/keyadmin/internal/utils"
	"github.com/dmrc-hht/keyadmin/internal/validators"
	"github.com/dmrc-hht/keyadmin/models"
)

type clientSessionService struct {
	sessionRepo store.SessionRepository
	adapter     adapter.ServerAdapter
	validator   validators.Validator
	logger      *logger.Logger

	mu            sync.RWMutex
	user          models.User
	authenticated bool
}

func NewClientSessionService(sessionRepo store.SessionRepository, serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessionRepo: sessionRepo,
		adapter:     serverAdapter,
		validator:   validator,
		logger:      log,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) (models.User, bool, error) {
	session, err := s.sessionRepo.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("load stored session: %w", err)
	}

	user, err := models.ParseUser(session.User)
	if err != nil {
		// the stored profile is garbage; a session we cannot interpret is
		// worse than none, so drop it and start unauthenticated
		s.logger.Err(err).Str("func", "*clientSessionService.Restore").Msg("stored session is malformed, discarding")
		if delErr := s.sessionRepo.DeleteSession(ctx); delErr != nil {
			s.logger.Err(delErr).Str("func", "*clientSessionService.Restore").Msg("error discarding malformed session")
		}
		return models.User{}, false, nil
	}

	s.adapter.SetToken(session.AccessToken)
	s.setState(user, true)

	return user, true, nil
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) (models.User, error) {
	request := models.LoginRequest{Email: email, Password: password}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	rawUser, token, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	user, err := models.ParseUser(rawUser)
	if err != nil {
		return models.User{}, fmt.Errorf("parse user profile: %w", err)
	}

	session := models.Session{User: user.Raw, AccessToken: token}
	if err = s.sessionRepo.SaveSession(ctx, session); err != nil {
		// the login itself succeeded; losing durability only costs a
		// re-login after restart
		s.logger.Err(err).Str("func", "*clientSessionService.Login").Msg("error persisting session")
	}

	s.setState(user, true)

	return user, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	err := s.sessionRepo.DeleteSession(ctx)

	s.adapter.SetToken("")
	s.setState(models.User{}, false)

	if err != nil {
		return fmt.Errorf("delete stored session: %w", err)
	}
	return nil
}

func (s *clientSessionService) CurrentUser() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *clientSessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *clientSessionService) TokenExpiry() (time.Time, bool) {
	token := s.adapter.Token()
	if token == "" {
		return time.Time{}, false
	}

	expiry, err := utils.TokenExpiry(token)
	if err != nil {
		// opaque non-JWT tokens are fine, there is just nothing to show
		return time.Time{}, false
	}

	return expiry, true
}

func (s *clientSessionService) setState(user models.User, authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.authenticated = authenticated
}
