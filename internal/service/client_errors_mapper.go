// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

package service

import (
	"errors"

	"github.com/dmrc-hht/keyadmin/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		// the stored token no longer authenticates; the UI reacts by
		// sending the user back through login
		return ErrSessionExpired
	}

	return err
}
