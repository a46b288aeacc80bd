package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeta_Public(t *testing.T) {
	m := Meta{
		"platform": "github",
		"password": "hunter2",
		"totp":     "123456",
		"priority": "",
		"status":   "active",
	}

	got := m.Public()

	assert.Equal(t, Meta{"platform": "github", "status": "active"}, got)
	assert.Equal(t, "hunter2", m["password"], "source map must stay intact")
}

func TestMeta_Public_MixedCaseKeys(t *testing.T) {
	m := Meta{
		"Password":       "hunter2",
		"EMAIL":          "a@b",
		" totp ":         "123456",
		"email_recovery": "r@b",
		"platform":       "fb",
	}

	assert.Equal(t, Meta{"platform": "fb"}, m.Public())
}

func TestMeta_Public_Empty(t *testing.T) {
	assert.Nil(t, Meta(nil).Public())
	assert.Nil(t, Meta{}.Public())
}

func TestIsSecretField(t *testing.T) {
	for _, f := range RevealableFields {
		assert.True(t, IsSecretField(f), f)
	}
	assert.True(t, IsSecretField("Password"))
	assert.True(t, IsSecretField("  NOTE "))
	assert.True(t, IsSecretField("email_recovery"))
	assert.True(t, IsSecretField("password-hint"))
	assert.False(t, IsSecretField("title"))
	assert.False(t, IsSecretField("platform"))
	assert.False(t, IsSecretField("passwordless"))
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}
