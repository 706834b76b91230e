package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all CLI configuration flags from args (excluding the
// program name) and returns the resulting config view together with the
// positional arguments that follow the flags.
//
// Flags:
//
//	-s/-source source language code (e.g. "de")
//	-t/-target target language code (e.g. "en")
//	-email account email for favorites/history
//	-password account password (prefer REVERSO_ACCOUNT_PASSWORD)
//	-base-url Reverso Context endpoint override
//	-login-url account login form override
//	-user-agent user agent override
//	-request-timeout request timeout (e.g. "5s", "1m")
//	-v verbose debug logging
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var sourceLang string
	var targetLang string
	var email string
	var password string
	var baseURL string
	var loginURL string
	var userAgent string
	var requestTimeout time.Duration
	var verbose bool

	fs := flag.NewFlagSet("reverso", flag.ContinueOnError)
	fs.StringVar(&sourceLang, "s", "", "Source language code")
	fs.StringVar(&sourceLang, "source", "", "Source language code (alias)")
	fs.StringVar(&targetLang, "t", "", "Target language code")
	fs.StringVar(&targetLang, "target", "", "Target language code (alias)")
	fs.StringVar(&email, "email", "", "Reverso account email")
	fs.StringVar(&password, "password", "", "Reverso account password")
	fs.StringVar(&baseURL, "base-url", "", "Reverso Context endpoint override")
	fs.StringVar(&loginURL, "login-url", "", "Account login form override")
	fs.StringVar(&userAgent, "user-agent", "", "User agent override")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 5s, 1m)")
	fs.BoolVar(&verbose, "v", false, "Verbose debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Languages: Languages{
			Source: sourceLang,
			Target: targetLang,
		},
		Account: Account{
			Email:    email,
			Password: password,
		},
		HTTP: HTTP{
			BaseURL:        baseURL,
			LoginURL:       loginURL,
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
		},
		Verbose: verbose,
	}, fs.Args(), nil
}
