// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the reverso
// CLI. It is populated by merging values from environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Languages holds the default language pair for lookups.
	Languages Languages `envPrefix:"REVERSO_"`

	// Account holds the optional Reverso account login used by the
	// favorites and history subcommands.
	Account Account `envPrefix:"REVERSO_ACCOUNT_"`

	// HTTP holds network settings for the underlying client session.
	HTTP HTTP `envPrefix:"REVERSO_HTTP_"`

	// Verbose enables debug logging to stderr.
	// Env: REVERSO_VERBOSE
	Verbose bool `env:"REVERSO_VERBOSE"`
}

// Languages holds the default language pair.
type Languages struct {
	// Source is the default source language code (e.g. "de").
	// Env: REVERSO_SOURCE_LANG
	Source string `env:"SOURCE_LANG"`

	// Target is the default target language code (e.g. "en").
	// Env: REVERSO_TARGET_LANG
	Target string `env:"TARGET_LANG"`
}

// Account holds the optional Reverso account login pair. Both fields must be
// set together or left empty together.
type Account struct {
	// Email is the account email address.
	// Env: REVERSO_ACCOUNT_EMAIL
	Email string `env:"EMAIL"`

	// Password is the account password. Prefer the environment variable
	// over the flag so the secret does not land in shell history.
	// Env: REVERSO_ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`
}

// HTTP holds network settings passed through to the client session.
type HTTP struct {
	// BaseURL overrides the Reverso Context endpoint root.
	// Env: REVERSO_HTTP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// LoginURL overrides the account login form URL.
	// Env: REVERSO_HTTP_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// UserAgent overrides the browser-like agent sent with every request.
	// Env: REVERSO_HTTP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout is the per-request timeout (e.g. "5s", "1m").
	// Env: REVERSO_HTTP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetCLIConfig parses flags from args (excluding the program name), merges
// them with environment variables, and validates the result. It returns the
// merged config together with the positional arguments left after flag
// parsing.
func GetCLIConfig(args []string) (*StructuredConfig, []string, error) {
	flagsCfg, positional, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(flagsCfg).
		build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, positional, nil
}

// validate checks that the merged config satisfies the CLI invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Languages.Source == "" || cfg.Languages.Target == "" {
		return ErrInvalidLanguageConfigs
	}

	if (cfg.Account.Email == "") != (cfg.Account.Password == "") {
		return ErrInvalidAccountConfigs
	}

	if cfg.HTTP.RequestTimeout < 0 {
		return ErrInvalidHTTPConfigs
	}

	return nil
}
