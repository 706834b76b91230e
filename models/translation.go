// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TranslationEntry is a single translation of the queried word or phrase,
// without surrounding context. Entries are yielded in the relevance order
// returned by the service; the client performs no local reordering.
type TranslationEntry struct {
	// Term is the translated word or phrase in the target language.
	Term string

	// PartOfSpeech is the grammatical category reported by the service
	// (e.g. "v.", "n."). May be empty for multi-word phrases.
	PartOfSpeech string

	// Frequency is the service-side usage count of this translation in
	// its aligned corpus. Higher means more common; zero when the service
	// omits it.
	Frequency int
}

// QueryRequest is the JSON body of a POST to the bst-query-service endpoint.
// The same endpoint serves both the dictionary entries (translations) and the
// paginated context samples for a query.
type QueryRequest struct {
	// SourceLang is the language code of SourceText (e.g. "de").
	SourceLang string `json:"source_lang"`

	// TargetLang is the language code translations are requested in.
	TargetLang string `json:"target_lang"`

	// SourceText is the word or phrase being looked up.
	SourceText string `json:"source_text"`

	// TargetText optionally narrows the context samples to those where
	// SourceText was translated as this exact term. Empty means all
	// translations.
	TargetText string `json:"target_text"`

	// Mode is a service-side query mode selector. The web UI always sends 0.
	Mode int `json:"mode"`

	// PageNum is the 1-based page of context samples to return.
	PageNum int `json:"npage"`
}

// QueryResponse is the JSON body returned by bst-query-service.
type QueryResponse struct {
	// DictionaryEntries lists the translations of the queried text in
	// relevance order. Empty when the service does not know the word.
	DictionaryEntries []DictionaryEntry `json:"dictionary_entry_list"`

	// Samples is the current page of bilingual context examples.
	Samples []SampleRow `json:"list"`

	// PagesTotal is the total number of sample pages for this query.
	PagesTotal int `json:"npages"`

	// RowsTotal is the total number of sample rows across all pages.
	RowsTotal int `json:"nrows"`
}

// DictionaryEntry is one element of QueryResponse.DictionaryEntries.
type DictionaryEntry struct {
	Term         string `json:"term"`
	PartOfSpeech string `json:"pos"`
	Frequency    int    `json:"frequency"`
}

// Entry converts the wire row into the public record type.
func (e DictionaryEntry) Entry() TranslationEntry {
	return TranslationEntry{
		Term:         e.Term,
		PartOfSpeech: e.PartOfSpeech,
		Frequency:    e.Frequency,
	}
}
