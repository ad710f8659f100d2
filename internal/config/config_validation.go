// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies all
// invariants the client needs at startup. Defaults are merged before
// validation, so a failure here means an explicitly supplied value was bad.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
