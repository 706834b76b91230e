package reverso

import (
	"errors"

	"github.com/MKhiriev/go-reverso-context/internal/session"
)

// ErrLanguagePairRequired is returned by New when the source or target
// language code is empty.
var ErrLanguagePairRequired = errors.New("source and target language codes are required")

// Sentinel errors re-exported from the transport layer so that callers can
// match iterator errors with errors.Is without importing internal packages.
var (
	// ErrAuthentication indicates missing credentials or a rejected login.
	ErrAuthentication = session.ErrAuthentication

	// ErrUnauthorized indicates the service refused an authenticated call,
	// typically because the account session expired server-side.
	ErrUnauthorized = session.ErrUnauthorized

	// ErrNotFound indicates an HTTP 404 from the service. A known word with
	// no translations does not produce this error; it yields an empty
	// sequence instead.
	ErrNotFound = session.ErrNotFound

	// ErrTooManyRequests indicates the service throttled the client.
	ErrTooManyRequests = session.ErrTooManyRequests

	// ErrServiceError indicates a query-level failure reported inside an
	// otherwise successful response body.
	ErrServiceError = session.ErrServiceError
)
