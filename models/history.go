package models

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// HistoryEntry is one record of the authenticated user's search history.
type HistoryEntry struct {
	// SourceLang is the language code of the searched text.
	SourceLang string

	// SourceText is the word or phrase that was searched.
	SourceText string

	// TargetLang is the language code the search translated into.
	TargetLang string

	// Translations lists the translations shown for the search, in the
	// order the service recorded them. Empty slots are skipped.
	Translations []string
}

// HistoryPage is the JSON body returned by bst-web-user/user/history.
type HistoryPage struct {
	Results      []HistoryRow `json:"results"`
	TotalResults int          `json:"numTotalResults"`
}

// HistoryRow is the wire form of one history record. The service encodes
// translations as numbered sibling keys (translation1, translation2, ...)
// rather than an array, so the row carries a custom unmarshaller.
type HistoryRow struct {
	SourceLang   string
	SourceText   string
	TargetLang   string
	Translations []string
}

const historyTranslationKeyPrefix = "translation"

// UnmarshalJSON decodes the named fields and collects the translationN keys
// in ascending numeric order. Keys with empty values or a non-numeric suffix
// are ignored.
func (r *HistoryRow) UnmarshalJSON(data []byte) error {
	var named struct {
		SourceLang string `json:"srcLang"`
		SourceText string `json:"srcText"`
		TargetLang string `json:"trgLang"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	byIndex := make(map[int]string)
	indexes := make([]int, 0, len(raw))
	for key, val := range raw {
		if !strings.HasPrefix(key, historyTranslationKeyPrefix) {
			continue
		}
		idx, err := strconv.Atoi(key[len(historyTranslationKeyPrefix):])
		if err != nil {
			continue
		}
		text, ok := val.(string)
		if !ok || text == "" {
			continue
		}
		byIndex[idx] = text
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	translations := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		translations = append(translations, byIndex[idx])
	}

	*r = HistoryRow{
		SourceLang:   named.SourceLang,
		SourceText:   named.SourceText,
		TargetLang:   named.TargetLang,
		Translations: translations,
	}
	return nil
}

// Entry converts the wire row into the public record type.
func (r HistoryRow) Entry() HistoryEntry {
	return HistoryEntry{
		SourceLang:   r.SourceLang,
		SourceText:   r.SourceText,
		TargetLang:   r.TargetLang,
		Translations: r.Translations,
	}
}
