package services

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// Format detection confidence levels. Extension matches rank above
// content heuristics.
const (
	extensionConfidence = 0.8
	structureConfidence = 0.7
	headingConfidence   = 0.6
	fallbackConfidence  = 0.5
)

// englishHintThreshold is the marker-word count at which text is
// tagged likely_english.
const englishHintThreshold = 2

// Patterns used by text parsing and format detection.
var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	sentenceEnd   = regexp.MustCompile(`[.!?]+`)
	wordToken     = regexp.MustCompile(`\b\w+\b`)
	specialChar   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	mdHeading     = regexp.MustCompile(`(?m)^#+\s`)
)

// Extractor normalises a raw text blob into an extraction record:
// cleaned text, sentence/word segmentation, source metadata and a
// format guess. It holds only immutable rule tables.
type Extractor struct {
	supportedFormats map[string]struct{}
	commonWords      []string
}

// ExtractorOption configures the extractor.
type ExtractorOption func(*Extractor)

// WithSupportedFormats overrides the set of recognised format tags.
func WithSupportedFormats(formats []string) ExtractorOption {
	return func(e *Extractor) {
		if len(formats) == 0 {
			return
		}
		e.supportedFormats = make(map[string]struct{}, len(formats))
		for _, f := range formats {
			e.supportedFormats[strings.ToLower(f)] = struct{}{}
		}
	}
}

// WithCommonWords overrides the marker words used by the language hint.
func WithCommonWords(words []string) ExtractorOption {
	return func(e *Extractor) {
		if len(words) > 0 {
			e.commonWords = words
		}
	}
}

// NewExtractor creates an extractor with the default rule tables.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		commonWords: domain.DefaultCommonWords(),
	}
	WithSupportedFormats(domain.DefaultSupportedFormats())(e)

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs all extraction tasks over the raw text. It is a total
// function: any input produces a well-formed record.
func (e *Extractor) Extract(text, sourceName string) domain.ExtractionRecord {
	if sourceName == "" {
		sourceName = domain.DefaultSourceName
	}

	return domain.ExtractionRecord{
		Text:     e.parseText(text),
		Metadata: e.captureMetadata(text, sourceName),
		Format:   e.detectFormat(text, sourceName),
	}
}

// Clean collapses whitespace runs to single spaces and trims the ends.
// Cleaning is idempotent.
func (e *Extractor) Clean(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// parseText cleans the input and derives sentence and word sequences.
// Sentence splitting is a boundary heuristic, not grammatical parsing:
// "3.14" yields two segments.
func (e *Extractor) parseText(data string) domain.TextStats {
	cleaned := e.Clean(data)

	sentences := make([]string, 0)
	for _, seg := range sentenceEnd.Split(cleaned, -1) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			sentences = append(sentences, seg)
		}
	}

	words := wordToken.FindAllString(cleaned, -1)
	if words == nil {
		words = make([]string, 0)
	}

	return domain.TextStats{
		Raw:           data,
		Cleaned:       cleaned,
		Sentences:     sentences,
		Words:         words,
		SentenceCount: len(sentences),
		WordCount:     len(words),
		CharCount:     utf8.RuneCountInString(data),
	}
}

// captureMetadata records provenance details about the blob. Byte size
// is measured on the raw text, not the cleaned text.
func (e *Extractor) captureMetadata(data, sourceName string) domain.SourceMetadata {
	return domain.SourceMetadata{
		SourceName:          sourceName,
		ExtractionTimestamp: time.Now().UTC().Format(time.RFC3339),
		DataSizeBytes:       len(data),
		LineCount:           strings.Count(data, "\n") + 1,
		HasSpecialChars:     specialChar.MatchString(data),
		LanguageHint:        e.languageHint(data),
	}
}

// detectFormat guesses the content type in two phases, first match
// wins: the source-name extension, then content structure.
func (e *Extractor) detectFormat(data, sourceName string) domain.FormatInfo {
	detected := domain.FormatUnknown
	confidence := 0.0

	if idx := strings.LastIndex(sourceName, "."); idx >= 0 {
		ext := strings.ToLower(sourceName[idx+1:])
		if _, ok := e.supportedFormats[ext]; ok {
			detected = ext
			confidence = extensionConfidence
		}
	}

	if detected == domain.FormatUnknown {
		trimmed := strings.TrimSpace(data)
		switch {
		case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
			detected, confidence = "json", structureConfidence
		case strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">"):
			detected, confidence = "xml", structureConfidence
		case mdHeading.MatchString(data):
			detected, confidence = "md", headingConfidence
		case strings.Contains(data, ",") && strings.Contains(data, "\n"):
			detected, confidence = "csv", fallbackConfidence
		default:
			detected, confidence = "txt", fallbackConfidence
		}
	}

	_, supported := e.supportedFormats[detected]

	return domain.FormatInfo{
		DetectedType: detected,
		Confidence:   confidence,
		Supported:    supported,
	}
}

// languageHint counts occurrences of the common marker words in the
// lowercased text. The counting is substring-based, not word-boundary
// based: a marker embedded in a larger token still matches the
// leading/trailing space variants.
func (e *Extractor) languageHint(data string) string {
	lower := strings.ToLower(data)

	count := 0
	for _, w := range e.commonWords {
		count += strings.Count(lower, " "+w+" ")
		count += strings.Count(lower, " "+w)
		count += strings.Count(lower, w+" ")
	}
	for _, w := range e.commonWords {
		if strings.HasPrefix(lower, w+" ") {
			count++
		}
	}

	if count >= englishHintThreshold {
		return domain.LanguageLikelyEnglish
	}
	return domain.LanguageUnknown
}
