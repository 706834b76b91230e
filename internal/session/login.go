// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// antiforgeryCookieName is set by the account login page alongside the
// hidden form token; both must be present for the form post to be accepted.
const antiforgeryCookieName = "Reverso.Account.Antiforgery"

// EnsureLogin performs the account login handshake once per session and is a
// no-op afterwards. It fails with a wrapped [ErrAuthentication] — before any
// network call — when the session holds no credentials, and after the
// handshake when the login page or the account endpoint rejects it.
//
// Concurrent callers are serialised; only the first performs the handshake.
func (s *Session) EnsureLogin(ctx context.Context) error {
	if s.creds == nil {
		return fmt.Errorf("%w: no credentials configured", ErrAuthentication)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loggedIn {
		return nil
	}

	if err := s.login(ctx); err != nil {
		return err
	}

	s.loggedIn = true
	s.log.Debug().Msg("reverso account login succeeded")
	return nil
}

// login drives the account login form: fetch the form, scrape the hidden
// verification token, verify the antiforgery cookie landed in the jar, then
// post the credentials. The session cookies issued on success live in the
// shared cookie jar and authenticate all subsequent user-data requests.
func (s *Session) login(ctx context.Context) error {
	token, err := s.fetchVerificationToken(ctx)
	if err != nil {
		return err
	}

	if s.antiforgeryCookie() == "" {
		return fmt.Errorf("%w: antiforgery cookie not set by login page", ErrAuthentication)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("returnUrl", s.client.BaseURL+"/").
		SetHeader("Referer", s.loginURL).
		SetHeader("Origin", originOf(s.loginURL)).
		SetFormData(map[string]string{
			"Email":                      s.creds.Email,
			"Password":                   s.creds.Password,
			"RememberMe":                 "true",
			"__RequestVerificationToken": token,
		}).
		Post(s.loginURL)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("%w: login rejected with http %d", ErrAuthentication, resp.StatusCode())
	}

	return nil
}

// fetchVerificationToken GETs the login form and extracts the hidden
// __RequestVerificationToken input.
func (s *Session) fetchVerificationToken(ctx context.Context) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"returnUrl": s.client.BaseURL + "/",
			"lang":      "en",
		}).
		Get(s.loginURL)
	if err != nil {
		return "", fmt.Errorf("fetch login page: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("fetch login page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("parse login page: %w", err)
	}

	token, ok := doc.Find(`input[name="__RequestVerificationToken"][type="hidden"]`).Attr("value")
	if !ok || token == "" {
		return "", fmt.Errorf("%w: verification token not found on login page", ErrAuthentication)
	}

	return token, nil
}

func (s *Session) antiforgeryCookie() string {
	jar := s.httpClient().Jar
	if jar == nil {
		return ""
	}
	u, err := url.Parse(s.loginURL)
	if err != nil {
		return ""
	}
	for _, c := range jar.Cookies(u) {
		if c.Name == antiforgeryCookieName {
			return c.Value
		}
	}
	return ""
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}
