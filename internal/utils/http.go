// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON body of every non-2xx API response.
type ErrorBody struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteJSON serializes data to JSON and writes it with statusCode and a
// JSON content type. If marshaling fails it responds with 500 and returns a
// wrapped error.
//
// Example usage:
//
//	WriteJSON(w, records, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorBody] for r, tagged with the request trace id
// when one is present.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	body := ErrorBody{Error: message}
	if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
		body.TraceID = traceID
	}
	_, _ = WriteJSON(w, body, statusCode)
}
