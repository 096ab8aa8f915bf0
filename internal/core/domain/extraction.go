package domain

// AnalysisRequest is the input to the pipeline: a raw text blob plus an
// optional source name used for format detection and provenance.
type AnalysisRequest struct {
	// Text is the raw unstructured text to analyse.
	Text string `json:"text"`

	// SourceName identifies where the text came from (file name, URL, ...).
	// Empty defaults to "unknown".
	SourceName string `json:"source_name,omitempty"`
}

// DefaultSourceName is used when a request carries no source name.
const DefaultSourceName = "unknown"

// Language hint values produced by the extractor.
const (
	// LanguageLikelyEnglish means the common-word heuristic fired.
	LanguageLikelyEnglish = "likely_english"

	// LanguageUnknown means the heuristic found too few marker words.
	LanguageUnknown = "unknown"
)

// FormatUnknown is the detected type when no heuristic resolves.
const FormatUnknown = "unknown"

// TextStats holds the normalised text and its lexical statistics.
// Words and Sentences preserve discovery order; duplicates are kept.
type TextStats struct {
	// Raw is the original input, byte for byte.
	Raw string `json:"raw"`

	// Cleaned is the input with whitespace runs collapsed and trimmed.
	Cleaned string `json:"cleaned"`

	// Sentences are non-empty trimmed segments split on .!? runs.
	Sentences []string `json:"sentences"`

	// Words are maximal runs of word characters in the cleaned text.
	Words []string `json:"words"`

	SentenceCount int `json:"sentence_count"`
	WordCount     int `json:"word_count"`

	// CharCount is the character (rune) length of Raw, not Cleaned.
	CharCount int `json:"char_count"`
}

// SourceMetadata captures provenance details about the analysed blob.
type SourceMetadata struct {
	SourceName string `json:"source_name"`

	// ExtractionTimestamp is the UTC wall-clock time of the call, ISO-8601.
	ExtractionTimestamp string `json:"extraction_timestamp"`

	// DataSizeBytes is the UTF-8 encoded byte length of the raw text.
	DataSizeBytes int `json:"data_size_bytes"`

	// LineCount is the newline count plus one.
	LineCount int `json:"line_count"`

	// HasSpecialChars is true when any character falls outside
	// [a-zA-Z0-9] and whitespace.
	HasSpecialChars bool `json:"has_special_chars"`

	// LanguageHint is "likely_english" or "unknown".
	LanguageHint string `json:"language_hint"`
}

// FormatInfo is the extractor's low-confidence format guess.
type FormatInfo struct {
	// DetectedType is one of txt, json, csv, xml, html, md or unknown.
	DetectedType string `json:"detected_type"`

	// Confidence is 0.0-1.0; extension matches score higher than
	// content heuristics.
	Confidence float64 `json:"confidence"`

	// Supported is true when DetectedType is in the supported-format set.
	Supported bool `json:"supported"`
}

// ExtractionRecord is the extractor's output: normalised text plus
// derived metadata and format guess. It is immutable once returned.
type ExtractionRecord struct {
	Text     TextStats      `json:"text"`
	Metadata SourceMetadata `json:"metadata"`
	Format   FormatInfo     `json:"format"`
}
