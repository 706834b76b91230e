// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-reverso-context/internal/logger"
	"github.com/MKhiriev/go-reverso-context/models"
	"github.com/go-resty/resty/v2"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultBaseURL   = "https://context.reverso.net"
	DefaultLoginURL  = "https://account.reverso.net/Account/Login"
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.14; rv:77.0) Gecko/20100101 Firefox/77.0"
	DefaultTimeout   = 5 * time.Second
)

// Endpoint paths on context.reverso.net.
const (
	queryPath     = "/bst-query-service"
	suggestPath   = "/bst-suggest-service"
	favoritesPath = "/bst-web-user/user/favourites"
	historyPath   = "/bst-web-user/user/history"
)

// Config holds the network settings of a Session.
type Config struct {
	// BaseURL is the Reverso Context endpoint root. Defaults to
	// [DefaultBaseURL]; overridden in tests to point at a local server.
	BaseURL string

	// LoginURL is the Reverso account login form URL. Defaults to
	// [DefaultLoginURL].
	LoginURL string

	// UserAgent is sent with every request. Defaults to [DefaultUserAgent];
	// Reverso rejects requests without a browser-like agent.
	UserAgent string

	// Timeout is the per-request timeout. Defaults to [DefaultTimeout].
	// Transport timeouts surface as wrapped resty errors on the call that
	// hit them.
	Timeout time.Duration

	// Credentials is the optional account login pair. When nil, EnsureLogin
	// fails with ErrAuthentication without touching the network.
	Credentials *models.Credentials
}

// Session is an HTTP session against the Reverso Context service. It holds
// the shared cookie jar, so a logged-in session authenticates every
// subsequent user-data request. The zero value is not usable; construct with
// [New].
type Session struct {
	client   *resty.Client
	loginURL string
	creds    *models.Credentials
	log      *logger.Logger

	// mu serialises the login handshake so concurrent user-data calls from
	// the same session cannot race the cookie jar mid-login.
	mu       sync.Mutex
	loggedIn bool
}

// New constructs a Session from cfg, normalising and validating the base and
// login URLs and applying defaults for unset fields. No network traffic is
// generated.
func New(cfg Config, log *logger.Logger) (*Session, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = DefaultLoginURL
	}

	baseURL, err := normalizeURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	loginURL, err := normalizeURL(cfg.LoginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid login url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Origin", baseURL).
		SetHeader("Accept-Language", "en-US,en;q=0.5")

	return &Session{
		client:   cli,
		loginURL: loginURL,
		creds:    cfg.Credentials,
		log:      log,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// HasCredentials reports whether the session was constructed with an account
// login pair.
func (s *Session) HasCredentials() bool {
	return s.creds != nil
}

// Authenticated reports whether the login handshake has already succeeded.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// QueryTranslations POSTs a lookup to the bst-query-service endpoint. The
// response carries both the dictionary entries and one page of context
// samples for req. Returns an error if the request fails, the status is
// non-2xx, the body reports a service error, or decoding fails.
func (s *Session) QueryTranslations(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error) {
	var out models.QueryResponse
	if err := s.postJSON(ctx, queryPath, req, &out); err != nil {
		return models.QueryResponse{}, fmt.Errorf("query request: %w", err)
	}
	return out, nil
}

// QuerySuggestions POSTs a completion lookup to the bst-suggest-service
// endpoint. Returns an error if the request, status mapping, or decoding
// fails.
func (s *Session) QuerySuggestions(ctx context.Context, req models.SuggestRequest) (models.SuggestResponse, error) {
	var out models.SuggestResponse
	if err := s.postJSON(ctx, suggestPath, req, &out); err != nil {
		return models.SuggestResponse{}, fmt.Errorf("suggest request: %w", err)
	}
	return out, nil
}

// FetchFavorites GETs one page of the user's saved entries. The session must
// be authenticated via EnsureLogin first; otherwise the service answers 401
// which maps to ErrUnauthorized.
func (s *Session) FetchFavorites(ctx context.Context, q models.UserEntriesQuery) (models.FavoritesPage, error) {
	var out models.FavoritesPage
	if err := s.getUserEntries(ctx, favoritesPath, q, &out); err != nil {
		return models.FavoritesPage{}, fmt.Errorf("favorites request: %w", err)
	}
	return out, nil
}

// FetchHistory GETs one page of the user's search history. Requires an
// authenticated session, same as FetchFavorites.
func (s *Session) FetchHistory(ctx context.Context, q models.UserEntriesQuery) (models.HistoryPage, error) {
	var out models.HistoryPage
	if err := s.getUserEntries(ctx, historyPath, q, &out); err != nil {
		return models.HistoryPage{}, fmt.Errorf("history request: %w", err)
	}
	return out, nil
}

func (s *Session) postJSON(ctx context.Context, path string, body, out any) error {
	s.log.Debug().Str("path", path).Msg("reverso json request")

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetBody(body).
		Post(path)
	if err != nil {
		return err
	}

	return s.decodeResponse(resp, path, out)
}

func (s *Session) getUserEntries(ctx context.Context, path string, q models.UserEntriesQuery, out any) error {
	s.log.Debug().Str("path", path).Int("start", q.Start).Msg("reverso user entries request")

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetQueryParams(map[string]string{
			"sourceLang": q.SourceLang,
			"targetLang": q.TargetLang,
			"start":      strconv.Itoa(q.Start),
			"length":     strconv.Itoa(q.Length),
			// The web UI always sends order=10; other values are rejected.
			"order": "10",
		}).
		Get(path)
	if err != nil {
		return err
	}

	return s.decodeResponse(resp, path, out)
}

func (s *Session) decodeResponse(resp *resty.Response, path string, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := checkServiceError(resp.Body()); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// httpClient exposes the underlying http.Client for cookie inspection.
func (s *Session) httpClient() *http.Client {
	return s.client.GetClient()
}
