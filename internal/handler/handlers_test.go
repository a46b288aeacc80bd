package handler

import (
	"testing"

	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, &config.ServerConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_NilServices(t *testing.T) {
	h, err := NewHandlers(nil, &config.ServerConfig{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoServices)
}
