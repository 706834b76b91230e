// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, val := range envVars {
		t.Setenv(key, val)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"REVERSO_SOURCE_LANG": "de",
		"REVERSO_TARGET_LANG": "en",

		"REVERSO_ACCOUNT_EMAIL":    "user@example.com",
		"REVERSO_ACCOUNT_PASSWORD": "secret",

		"REVERSO_HTTP_BASE_URL":        "https://context.reverso.net",
		"REVERSO_HTTP_LOGIN_URL":       "https://account.reverso.net/Account/Login",
		"REVERSO_HTTP_USER_AGENT":      "test-agent/1.0",
		"REVERSO_HTTP_REQUEST_TIMEOUT": "30s",

		"REVERSO_VERBOSE": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Languages.Source)
	assert.Equal(t, "en", cfg.Languages.Target)

	assert.Equal(t, "user@example.com", cfg.Account.Email)
	assert.Equal(t, "secret", cfg.Account.Password)

	assert.Equal(t, "https://context.reverso.net", cfg.HTTP.BaseURL)
	assert.Equal(t, "https://account.reverso.net/Account/Login", cfg.HTTP.LoginURL)
	assert.Equal(t, "test-agent/1.0", cfg.HTTP.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)

	assert.True(t, cfg.Verbose)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"REVERSO_SOURCE_LANG":   "de",
		"REVERSO_ACCOUNT_EMAIL": "user@example.com",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Languages.Source)
	assert.Empty(t, cfg.Languages.Target)
	assert.Equal(t, "user@example.com", cfg.Account.Email)
	assert.Empty(t, cfg.Account.Password)
	assert.Zero(t, cfg.HTTP.RequestTimeout)
	assert.False(t, cfg.Verbose)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REVERSO_HTTP_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
