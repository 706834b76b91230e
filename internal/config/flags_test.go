package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, positional, err := ParseFlags([]string{
		"-s", "de",
		"-t", "en",
		"-email", "user@example.com",
		"-password", "secret",
		"-base-url", "http://localhost:8080",
		"-login-url", "http://localhost:8080/Account/Login",
		"-user-agent", "test-agent/1.0",
		"-request-timeout", "10s",
		"-v",
		"translate", "braucht",
	})

	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Languages.Source)
	assert.Equal(t, "en", cfg.Languages.Target)
	assert.Equal(t, "user@example.com", cfg.Account.Email)
	assert.Equal(t, "secret", cfg.Account.Password)
	assert.Equal(t, "http://localhost:8080", cfg.HTTP.BaseURL)
	assert.Equal(t, "http://localhost:8080/Account/Login", cfg.HTTP.LoginURL)
	assert.Equal(t, "test-agent/1.0", cfg.HTTP.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.True(t, cfg.Verbose)

	assert.Equal(t, []string{"translate", "braucht"}, positional)
}

func TestParseFlags_Aliases(t *testing.T) {
	cfg, _, err := ParseFlags([]string{"-source", "fr", "-target", "es"})

	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Languages.Source)
	assert.Equal(t, "es", cfg.Languages.Target)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, positional, err := ParseFlags([]string{"suggest", "bew"})

	require.NoError(t, err)
	assert.Empty(t, cfg.Languages.Source)
	assert.Empty(t, cfg.Account.Email)
	assert.Equal(t, []string{"suggest", "bew"}, positional)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, _, err := ParseFlags([]string{"-no-such-flag"})
	require.Error(t, err)
}
