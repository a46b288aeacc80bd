// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/utils"
)

// withHashing verifies the HashSHA256 header against the raw request body.
// It is a no-op when the handler has no hash key.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecordBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			utils.WriteError(w, r, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum := r.Header.Get(utils.HashHeader)
		if sum == "" {
			log.Error().Str("func", "*Handler.withHashing").Msg("request is not signed")
			utils.WriteError(w, r, ErrMissingHash.Error(), http.StatusBadRequest)
			return
		}

		if !utils.VerifyHash(body, sum) {
			log.Error().Str("func", "*Handler.withHashing").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			utils.WriteError(w, r, ErrHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
