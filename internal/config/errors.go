package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLanguageConfigs indicates a missing source or target
	// language code.
	ErrInvalidLanguageConfigs = errors.New("invalid language configuration")
	// ErrInvalidAccountConfigs indicates a half-configured account login
	// (email without password or vice versa).
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidHTTPConfigs indicates invalid network settings
	// (for example, a negative request timeout).
	ErrInvalidHTTPConfigs = errors.New("invalid http configuration")
)
