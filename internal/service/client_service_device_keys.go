package service

import (
	"context"
	"fmt"

	"github.com/dmrc-hht/keyadmin/internal/adapter"
	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/validators"
	"github.com/dmrc-hht/keyadmin/models"
)

type clientDeviceKeyService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientDeviceKeyService(serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) ClientDeviceKeyService {
	return &clientDeviceKeyService{
		adapter:   serverAdapter,
		validator: validator,
		logger:    log,
	}
}

func (d *clientDeviceKeyService) List(ctx context.Context) ([]models.DeviceKey, error) {
	keys, err := d.adapter.DeviceKeys(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return keys, nil
}

func (d *clientDeviceKeyService) Create(ctx context.Context, req models.CreateDeviceKeyRequest) error {
	if err := d.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := d.adapter.CreateDeviceKey(ctx, req); err != nil {
		return fmt.Errorf("create device key: %w", mapAdapterError(err))
	}
	return nil
}

func (d *clientDeviceKeyService) Update(ctx context.Context, id int64, req models.UpdateDeviceKeyRequest) error {
	if err := d.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := d.adapter.UpdateDeviceKey(ctx, id, req); err != nil {
		return fmt.Errorf("update device key %d: %w", id, mapAdapterError(err))
	}
	return nil
}

func (d *clientDeviceKeyService) Delete(ctx context.Context, id int64) error {
	if err := d.adapter.DeleteDeviceKey(ctx, id); err != nil {
		return fmt.Errorf("delete device key %d: %w", id, mapAdapterError(err))
	}
	return nil
}
