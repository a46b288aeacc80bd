// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/account-vault/internal/logger"
)

// getVersion answers GET /api/version with the plain version string. The
// client logs it at start to tell which server it talks to.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getVersion").Msg("write version response")
	}
}
