package domain

// Default validation thresholds.
const (
	// DefaultMinWords is the minimum word count for the word_count check.
	DefaultMinWords = 1

	// DefaultMinChars is the minimum character count for the char_count check.
	DefaultMinChars = 1
)

// ValidationRules are the thresholds the reviewer validates against.
// They are fixed at construction and never mutated.
type ValidationRules struct {
	MinWords int
	MinChars int
}

// DefaultValidationRules returns the standard rule table.
func DefaultValidationRules() ValidationRules {
	return ValidationRules{
		MinWords: DefaultMinWords,
		MinChars: DefaultMinChars,
	}
}

// DefaultSupportedFormats returns the fixed set of format tags the
// extractor recognises.
func DefaultSupportedFormats() []string {
	return []string{"txt", "json", "csv", "xml", "html", "md"}
}

// DefaultCommonWords returns the short English marker words used by
// the language hint heuristic.
func DefaultCommonWords() []string {
	return []string{"the", "is", "at", "which", "on", "a", "an"}
}
