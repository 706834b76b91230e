// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FavoriteEntry is one context sample the authenticated user saved on
// Reverso Context. All fields are plain strings; the context fields may
// carry <em>...</em> highlight markers unless cleanup was requested.
type FavoriteEntry struct {
	// SourceLang is the language code of the saved source text.
	SourceLang string

	// SourceText is the word or phrase the sample was saved for.
	SourceText string

	// SourceContext is the full example sentence in the source language.
	SourceContext string

	// TargetLang is the language code of the translation.
	TargetLang string

	// TargetText is the saved translation of SourceText.
	TargetText string

	// TargetContext is the full example sentence in the target language.
	TargetContext string
}

// UserEntriesQuery carries the query parameters shared by the favorites and
// history listing endpoints (bst-web-user/user/*).
type UserEntriesQuery struct {
	// SourceLang filters entries by source language. The endpoints accept
	// several codes separated by commas.
	SourceLang string

	// TargetLang filters entries by target language, same format as
	// SourceLang.
	TargetLang string

	// Start is the zero-based offset of the first entry to return.
	Start int

	// Length is the page size requested from the service.
	Length int
}

// FavoritesPage is the JSON body returned by bst-web-user/user/favourites.
type FavoritesPage struct {
	// Results is the current page of saved entries.
	Results []FavoriteRow `json:"results"`

	// TotalResults is the total number of favorites across all pages. The
	// client pages until Start reaches this value.
	TotalResults int `json:"numTotalResults"`
}

// FavoriteRow is the wire form of one saved entry.
type FavoriteRow struct {
	SourceLang    string `json:"srcLang"`
	SourceText    string `json:"srcText"`
	SourceContext string `json:"srcContext"`
	TargetLang    string `json:"trgLang"`
	TargetText    string `json:"trgText"`
	TargetContext string `json:"trgContext"`
}

// Entry converts the wire row into the public record type.
func (r FavoriteRow) Entry() FavoriteEntry {
	return FavoriteEntry{
		SourceLang:    r.SourceLang,
		SourceText:    r.SourceText,
		SourceContext: r.SourceContext,
		TargetLang:    r.TargetLang,
		TargetText:    r.TargetText,
		TargetContext: r.TargetContext,
	}
}
