// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/account-vault/internal/logger"
)

// appInfoService reports static facts about the running server.
type appInfoService struct {
	version string
}

// NewAppInfoService returns an [AppInfoService] reporting version. A blank
// version is a configuration error.
func NewAppInfoService(version string, log *logger.Logger) (AppInfoService, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", version).Msg("app info service is ready")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
