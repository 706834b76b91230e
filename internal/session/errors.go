package session

import "errors"

// Sentinel errors surfaced by the transport layer. They are wrapped with
// request context via fmt.Errorf("...: %w", err), so callers should match
// them with errors.Is.
var (
	// ErrAuthentication indicates that login is impossible or was rejected:
	// no credentials were configured, the antiforgery token or cookie could
	// not be obtained, or the account endpoint refused the form post.
	ErrAuthentication = errors.New("authentication failed")

	// ErrBadRequest maps HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401 responses, typically an expired or
	// missing account session on the user-data endpoints.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps HTTP 403 responses.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps HTTP 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrTooManyRequests maps HTTP 429 responses; Reverso throttles bursts
	// of anonymous queries.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrInternalServerError maps HTTP 5xx responses.
	ErrInternalServerError = errors.New("internal server error")

	// ErrServiceError indicates a 2xx response whose JSON body carried an
	// "error" member, which is how Reverso reports query-level failures.
	ErrServiceError = errors.New("reverso service error")
)
