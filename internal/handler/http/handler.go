// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/MKhiriev/account-vault/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables HashSHA256 verification of request bodies when set.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Bool("integrity_check", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		logger:   logger,
	}
}
