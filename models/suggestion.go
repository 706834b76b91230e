package models

// SuggestRequest is the JSON body of a POST to the bst-suggest-service
// endpoint.
type SuggestRequest struct {
	// Search is the prefix (or misspelling, for fuzzy parts) to complete.
	Search string `json:"search"`

	// SourceLang is the language the suggestions are drawn from.
	SourceLang string `json:"source_lang"`

	// TargetLang is the language pair counterpart; it influences ranking.
	TargetLang string `json:"target_lang"`
}

// SuggestResponse is the JSON body returned by bst-suggest-service. The
// Fuzzy1 and Fuzzy2 groups hold typo-tolerant matches and are only consumed
// when fuzzy search is requested.
type SuggestResponse struct {
	Suggestions []SuggestionRow `json:"suggestions"`
	Fuzzy1      []SuggestionRow `json:"fuzzy1"`
	Fuzzy2      []SuggestionRow `json:"fuzzy2"`
}

// SuggestionRow is one ranked completion. Suggestion may carry <b>...</b>
// markers around the matched part.
type SuggestionRow struct {
	Suggestion string `json:"suggestion"`
	Weight     int    `json:"weight"`
}
