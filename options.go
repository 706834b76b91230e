package reverso

// callOptions carries per-call overrides of the client defaults.
type callOptions struct {
	sourceLang string
	targetLang string
	targetText string
	cleanup    bool
	fuzzy      bool
}

// Option overrides a client default for a single call.
type Option func(*callOptions)

// WithSourceLang overrides the client's default source language for this
// call. The code is passed to the service as-is; validity is enforced
// remotely.
func WithSourceLang(code string) Option {
	return func(o *callOptions) { o.sourceLang = code }
}

// WithTargetLang overrides the client's default target language for this
// call.
func WithTargetLang(code string) Option {
	return func(o *callOptions) { o.targetLang = code }
}

// WithTargetText narrows TranslationSamples to examples where the queried
// text was translated as exactly this term (one of the terms yielded by
// Translations). Ignored by other calls.
func WithTargetText(text string) Option {
	return func(o *callOptions) { o.targetText = text }
}

// WithCleanup toggles removal of HTML highlight markers from yielded text.
// Defaults differ per call: TranslationSamples keeps the raw markers unless
// enabled, while SearchSuggestions and Favorites clean them unless disabled.
func WithCleanup(enabled bool) Option {
	return func(o *callOptions) { o.cleanup = enabled }
}

// WithFuzzySearch makes SearchSuggestions include the service's typo-tolerant
// match groups after the exact-prefix ones (e.g. "entzwickl" can still
// suggest "Entwickler"). Ignored by other calls.
func WithFuzzySearch(enabled bool) Option {
	return func(o *callOptions) { o.fuzzy = enabled }
}

// options merges the client defaults, the per-method cleanup default, and
// the caller's overrides.
func (c *Client) options(cleanupDefault bool, opts []Option) callOptions {
	o := callOptions{
		sourceLang: c.sourceLang,
		targetLang: c.targetLang,
		cleanup:    cleanupDefault,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
