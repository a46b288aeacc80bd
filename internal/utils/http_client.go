// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so transport adapters share one
// construction point.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
