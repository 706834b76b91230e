package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCLIConfig_FlagsOnly(t *testing.T) {
	cfg, positional, err := GetCLIConfig([]string{"-s", "de", "-t", "en", "translate", "braucht"})

	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Languages.Source)
	assert.Equal(t, "en", cfg.Languages.Target)
	assert.Equal(t, []string{"translate", "braucht"}, positional)
}

func TestGetCLIConfig_EnvWinsOverFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REVERSO_SOURCE_LANG": "fr",
	})

	cfg, _, err := GetCLIConfig([]string{"-s", "de", "-t", "en"})

	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Languages.Source)
	assert.Equal(t, "en", cfg.Languages.Target)
}

func TestGetCLIConfig_MissingLanguagePair(t *testing.T) {
	_, _, err := GetCLIConfig([]string{"-s", "de"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLanguageConfigs)
}

func TestGetCLIConfig_HalfConfiguredAccount(t *testing.T) {
	_, _, err := GetCLIConfig([]string{"-s", "de", "-t", "en", "-email", "user@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAccountConfigs)
}

func TestGetCLIConfig_AccountPasswordFromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REVERSO_ACCOUNT_PASSWORD": "secret",
	})

	cfg, _, err := GetCLIConfig([]string{"-s", "de", "-t", "en", "-email", "user@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", cfg.Account.Email)
	assert.Equal(t, "secret", cfg.Account.Password)
}
