package reverso

import "regexp"

// Highlight markers in Reverso payloads (<em>...</em> in samples and
// contexts, <b>...</b> in suggestions) never nest or overlap, so a flat
// pattern is sufficient.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML highlight tags from text, returning the plain
// sentence. It is applied automatically when cleanup is enabled on a call.
func StripTags(text string) string {
	return htmlTagPattern.ReplaceAllString(text, "")
}
