package service

import (
	"github.com/dmrc-hht/keyadmin/internal/adapter"
	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/store"
	"github.com/dmrc-hht/keyadmin/internal/validators"
)

type ClientServices struct {
	SessionService   ClientSessionService
	DeviceKeyService ClientDeviceKeyService
}

func NewClientServices(sessionRepo store.SessionRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	validator := validators.NewDeviceKeyValidator()

	return &ClientServices{
		SessionService:   NewClientSessionService(sessionRepo, serverAdapter, validator, log),
		DeviceKeyService: NewClientDeviceKeyService(serverAdapter, validator, log),
	}
}
