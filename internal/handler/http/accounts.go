// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/utils"
	"github.com/MKhiriev/account-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxRecordBodySize caps POST bodies; envelopes are small.
const maxRecordBodySize = 1 << 20

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.AccountService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		h.writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error writing response")
	}
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var newRecord models.NewRecord
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecordBodySize))
	if err := dec.Decode(&newRecord); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("invalid JSON was passed")
		utils.WriteError(w, r, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AccountService.Create(r.Context(), newRecord)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error creating account")
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("func", "*Handler.createAccount").Str("id", created.ID).Msg("account created")
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error writing response")
	}
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.AccountService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAccount").Str("id", id).Msg("error deleting account")
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkDB(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.AccountService.Ping(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.checkDB").Msg("storage ping failed")
		utils.WriteJSON(w, models.HealthResponse{OK: false}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	utils.WriteError(w, r, message, status)
}
