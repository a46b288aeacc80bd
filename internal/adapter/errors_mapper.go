// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/account-vault/internal/utils"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrStorageUnavailable,
}

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server's message and trace id.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("http %d: %s", code, msg)
}

// errorMessage extracts the message of a [utils.ErrorBody]. Bodies that are
// not JSON are returned as plain text.
func errorMessage(body []byte) string {
	var eb utils.ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error == "" {
		return strings.TrimSpace(string(body))
	}
	if eb.TraceID != "" {
		return eb.Error + " (trace_id " + eb.TraceID + ")"
	}
	return eb.Error
}
