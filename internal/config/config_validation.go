// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.MirrorQueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.ClipboardTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
