// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the HTTP transport used to talk to the Reverso
// Context web endpoints.
//
// A [Session] owns a resty client configured with the browser-like default
// headers Reverso expects and a cookie jar that carries the account session
// after login. The typed endpoint methods (QueryTranslations,
// QuerySuggestions, FetchFavorites, FetchHistory) serialise requests, map
// HTTP status codes to the sentinel errors defined in errors.go, and detect
// the in-body "error" key Reverso uses to report failures inside 2xx
// responses.
//
// Login against account.reverso.net is driven by [Session.EnsureLogin]: it
// scrapes the antiforgery verification token from the login form, posts the
// credentials once, and keeps the resulting cookies for the lifetime of the
// session. Callers can rely on [errors.Is] with [ErrAuthentication],
// [ErrUnauthorized], [ErrNotFound] etc. for transport-agnostic handling.
package session
