package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRow_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want HistoryRow
	}{
		{
			name: "translations ordered by key number",
			in:   `{"srcLang":"de","srcText":"braucht","trgLang":"en","translation2":"required","translation1":"needed"}`,
			want: HistoryRow{
				SourceLang:   "de",
				SourceText:   "braucht",
				TargetLang:   "en",
				Translations: []string{"needed", "required"},
			},
		},
		{
			name: "empty translation slots skipped",
			in:   `{"srcLang":"de","srcText":"x","trgLang":"en","translation1":"a","translation2":"","translation3":"c"}`,
			want: HistoryRow{
				SourceLang:   "de",
				SourceText:   "x",
				TargetLang:   "en",
				Translations: []string{"a", "c"},
			},
		},
		{
			name: "two-digit indexes sort numerically, not lexically",
			in:   `{"srcLang":"de","srcText":"x","trgLang":"en","translation10":"j","translation2":"b","translation1":"a"}`,
			want: HistoryRow{
				SourceLang:   "de",
				SourceText:   "x",
				TargetLang:   "en",
				Translations: []string{"a", "b", "j"},
			},
		},
		{
			name: "non-numeric suffix ignored",
			in:   `{"srcLang":"de","srcText":"x","trgLang":"en","translationFoo":"bad","translation1":"a"}`,
			want: HistoryRow{
				SourceLang:   "de",
				SourceText:   "x",
				TargetLang:   "en",
				Translations: []string{"a"},
			},
		},
		{
			name: "no translations",
			in:   `{"srcLang":"de","srcText":"x","trgLang":"en"}`,
			want: HistoryRow{
				SourceLang:   "de",
				SourceText:   "x",
				TargetLang:   "en",
				Translations: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row HistoryRow
			require.NoError(t, json.Unmarshal([]byte(tt.in), &row))
			assert.Equal(t, tt.want, row)
		})
	}
}

func TestHistoryRow_UnmarshalJSON_Invalid(t *testing.T) {
	var row HistoryRow
	err := json.Unmarshal([]byte(`[1,2,3]`), &row)
	require.Error(t, err)
}
