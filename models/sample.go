package models

// ContextSample is a bilingual sentence pair illustrating real-world usage
// of the queried text. Both sentences may carry <em>...</em> highlight
// markers around the queried part; the client removes them when cleanup is
// requested.
type ContextSample struct {
	// SourceText is the example sentence in the source language.
	SourceText string

	// TargetText is its aligned translation in the target language.
	TargetText string
}

// SampleRow is the wire form of one context example inside
// QueryResponse.Samples.
type SampleRow struct {
	SourceText string `json:"s_text"`
	TargetText string `json:"t_text"`
}

// Sample converts the wire row into the public record type.
func (r SampleRow) Sample() ContextSample {
	return ContextSample{SourceText: r.SourceText, TargetText: r.TargetText}
}
