// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services. Account operations are
// validated before they reach the repository.
func NewServices(repo store.AccountRepository, mirror MirrorQueue, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	accounts := NewAccountService(repo, mirror, logger)

	return &Services{
		AccountService: NewAccountValidationService().Wrap(accounts),
		AppInfoService: appInfo,
	}, nil
}
