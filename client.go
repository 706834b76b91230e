// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reverso

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reverso-context/internal/logger"
	"github.com/MKhiriev/go-reverso-context/internal/session"
	"github.com/MKhiriev/go-reverso-context/models"
	"github.com/rs/zerolog"
)

// Credentials is the Reverso account login pair, re-exported from models for
// convenience.
type Credentials = models.Credentials

// Page sizes requested from the user-data endpoints; matches what the
// Reverso web UI sends.
const (
	favoritesPageSize = 50
	historyPageSize   = 50
)

// Config configures a Client. SourceLang and TargetLang are required;
// everything else is optional.
type Config struct {
	// SourceLang is the default source language code (e.g. "de"). Language
	// codes are validated by the remote service, not locally.
	SourceLang string

	// TargetLang is the default target language code (e.g. "en").
	TargetLang string

	// Credentials enables Favorites and History. When nil those calls fail
	// with ErrAuthentication on first advance, before any network call.
	Credentials *Credentials

	// UserAgent overrides the browser-like agent sent with every request.
	UserAgent string

	// RequestTimeout bounds every HTTP call; transport timeouts surface as
	// iterator errors. Defaults to 5s.
	RequestTimeout time.Duration

	// BaseURL and LoginURL override the Reverso endpoints. Intended for
	// tests; leave empty for production use.
	BaseURL  string
	LoginURL string

	// Logger receives debug-level request logs. Nil disables logging.
	Logger *zerolog.Logger
}

// Client is a stateless-by-value client for Reverso Context lookups, holding
// the default language pair and the shared HTTP session. A Client is safe
// for concurrent use; individual iterators are not.
//
// The only internal state transition is unauthenticated to authenticated,
// happening once on the first successful Favorites or History advance and
// never reverting for the lifetime of the Client.
type Client struct {
	sourceLang string
	targetLang string
	session    *session.Session
	log        *logger.Logger
}

// New constructs a Client from cfg. It never contacts the network; invalid
// endpoint overrides are the only constructor failures besides a missing
// language pair.
func New(cfg Config) (*Client, error) {
	if cfg.SourceLang == "" || cfg.TargetLang == "" {
		return nil, ErrLanguagePairRequired
	}

	log := logger.Nop()
	if cfg.Logger != nil {
		log = logger.FromZerolog(*cfg.Logger)
	}

	sess, err := session.New(session.Config{
		BaseURL:     cfg.BaseURL,
		LoginURL:    cfg.LoginURL,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.RequestTimeout,
		Credentials: cfg.Credentials,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &Client{
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
		session:    sess,
		log:        log,
	}, nil
}

// Translations looks up text and yields its translations without context,
// in the relevance order returned by the service. An unknown word yields an
// empty sequence. Accepts WithSourceLang and WithTargetLang.
//
// The lookup is a single request, issued on the first Next.
func (c *Client) Translations(ctx context.Context, text string, opts ...Option) *Iter[models.TranslationEntry] {
	o := c.options(false, opts)

	return newIter(ctx, func(ctx context.Context, page int) ([]models.TranslationEntry, bool, error) {
		resp, err := c.session.QueryTranslations(ctx, models.QueryRequest{
			SourceLang: o.sourceLang,
			TargetLang: o.targetLang,
			SourceText: text,
			PageNum:    1,
		})
		if err != nil {
			return nil, false, err
		}

		entries := make([]models.TranslationEntry, 0, len(resp.DictionaryEntries))
		for _, row := range resp.DictionaryEntries {
			entries = append(entries, row.Entry())
		}
		return entries, false, nil
	})
}

// TranslationSamples yields bilingual context examples for text, paging
// through the service results as the iterator advances. Accepts
// WithSourceLang, WithTargetLang, WithTargetText (narrow samples to one
// translation), and WithCleanup (strip <em> highlight markers; off by
// default, so raw markers pass through).
func (c *Client) TranslationSamples(ctx context.Context, text string, opts ...Option) *Iter[models.ContextSample] {
	o := c.options(false, opts)

	return newIter(ctx, func(ctx context.Context, page int) ([]models.ContextSample, bool, error) {
		resp, err := c.session.QueryTranslations(ctx, models.QueryRequest{
			SourceLang: o.sourceLang,
			TargetLang: o.targetLang,
			SourceText: text,
			TargetText: o.targetText,
			PageNum:    page + 1,
		})
		if err != nil {
			return nil, false, err
		}

		samples := make([]models.ContextSample, 0, len(resp.Samples))
		for _, row := range resp.Samples {
			sample := row.Sample()
			if o.cleanup {
				sample.SourceText = StripTags(sample.SourceText)
				sample.TargetText = StripTags(sample.TargetText)
			}
			samples = append(samples, sample)
		}

		return samples, page+1 < resp.PagesTotal, nil
	})
}

// SearchSuggestions yields completions for prefix as ranked by the service.
// Accepts WithSourceLang, WithTargetLang, WithFuzzySearch (append the
// typo-tolerant match groups), and WithCleanup (strip the <b> markers around
// the matched part; on by default).
//
// The lookup is a single request, issued on the first Next.
func (c *Client) SearchSuggestions(ctx context.Context, prefix string, opts ...Option) *Iter[string] {
	o := c.options(true, opts)

	return newIter(ctx, func(ctx context.Context, page int) ([]string, bool, error) {
		resp, err := c.session.QuerySuggestions(ctx, models.SuggestRequest{
			Search:     prefix,
			SourceLang: o.sourceLang,
			TargetLang: o.targetLang,
		})
		if err != nil {
			return nil, false, err
		}

		rows := resp.Suggestions
		if o.fuzzy {
			rows = append(rows, resp.Fuzzy1...)
			rows = append(rows, resp.Fuzzy2...)
		}

		suggestions := make([]string, 0, len(rows))
		for _, row := range rows {
			text := row.Suggestion
			if o.cleanup {
				text = StripTags(text)
			}
			suggestions = append(suggestions, text)
		}
		return suggestions, false, nil
	})
}

// Favorites yields the entries the account saved on Reverso Context,
// paginating as the iterator advances. Requires Config.Credentials: the
// account login happens lazily on the first advance and the session is
// reused by later authenticated calls. Without credentials the first Next
// fails with ErrAuthentication before any network call.
//
// Accepts WithSourceLang, WithTargetLang (the endpoint takes comma-separated
// code lists) and WithCleanup (strip <em> markers from the context
// sentences; on by default).
func (c *Client) Favorites(ctx context.Context, opts ...Option) *Iter[models.FavoriteEntry] {
	o := c.options(true, opts)

	return newIter(ctx, func(ctx context.Context, page int) ([]models.FavoriteEntry, bool, error) {
		if err := c.session.EnsureLogin(ctx); err != nil {
			return nil, false, err
		}

		resp, err := c.session.FetchFavorites(ctx, models.UserEntriesQuery{
			SourceLang: o.sourceLang,
			TargetLang: o.targetLang,
			Start:      page * favoritesPageSize,
			Length:     favoritesPageSize,
		})
		if err != nil {
			return nil, false, err
		}

		entries := make([]models.FavoriteEntry, 0, len(resp.Results))
		for _, row := range resp.Results {
			entry := row.Entry()
			if o.cleanup {
				entry.SourceContext = StripTags(entry.SourceContext)
				entry.TargetContext = StripTags(entry.TargetContext)
			}
			entries = append(entries, entry)
		}

		return entries, (page+1)*favoritesPageSize < resp.TotalResults, nil
	})
}

// History yields the account's search history, newest first as returned by
// the service, paginating as the iterator advances. Authentication works the
// same way as for Favorites. Accepts WithSourceLang and WithTargetLang.
func (c *Client) History(ctx context.Context, opts ...Option) *Iter[models.HistoryEntry] {
	o := c.options(false, opts)

	return newIter(ctx, func(ctx context.Context, page int) ([]models.HistoryEntry, bool, error) {
		if err := c.session.EnsureLogin(ctx); err != nil {
			return nil, false, err
		}

		resp, err := c.session.FetchHistory(ctx, models.UserEntriesQuery{
			SourceLang: o.sourceLang,
			TargetLang: o.targetLang,
			Start:      page * historyPageSize,
			Length:     historyPageSize,
		})
		if err != nil {
			return nil, false, err
		}

		entries := make([]models.HistoryEntry, 0, len(resp.Results))
		for _, row := range resp.Results {
			entries = append(entries, row.Entry())
		}

		return entries, (page+1)*historyPageSize < resp.TotalResults, nil
	})
}
