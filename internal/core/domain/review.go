package domain

// Status is the reviewer's overall verdict for an extraction record.
type Status string

// Terminal status values. There are no transitions; the status is
// recomputed fresh on every review.
const (
	// StatusValid means the record passed with at least five words.
	StatusValid Status = "VALID"

	// StatusWarning means the record is well formed but has fewer
	// than five words.
	StatusWarning Status = "WARNING"

	// StatusInvalid means the record has no words or no characters.
	StatusInvalid Status = "INVALID"
)

// IsValid returns true if the status is a recognised value.
func (s Status) IsValid() bool {
	switch s {
	case StatusValid, StatusWarning, StatusInvalid:
		return true
	default:
		return false
	}
}

// CheckResult is the outcome of a single validation rule.
type CheckResult struct {
	// Value is the measured quantity the rule was applied to.
	Value int `json:"value"`

	// Valid is the pass/fail outcome.
	Valid bool `json:"valid"`

	// Rule is a human-readable description of the threshold.
	Rule string `json:"rule"`
}

// ValidationSummary aggregates the rule outcomes into a pass rate.
type ValidationSummary struct {
	TotalChecks int `json:"total_checks"`
	Passed      int `json:"passed"`

	// Score is Passed / TotalChecks, in [0, 1].
	Score float64 `json:"score"`
}

// PointValidation holds the fixed battery of independent rule checks.
// Checks never short-circuit each other.
type PointValidation struct {
	WordCount         CheckResult       `json:"word_count"`
	CharCount         CheckResult       `json:"char_count"`
	SentenceStructure CheckResult       `json:"sentence_structure"`
	DataSize          CheckResult       `json:"data_size"`
	Summary           ValidationSummary `json:"summary"`
}

// WordDetail is the per-token analysis retained for the first tokens
// of a record.
type WordDetail struct {
	Position int    `json:"position"`
	Word     string `json:"word"`
	Length   int    `json:"length"`

	// IsAlphanumeric is true when every character is a letter or digit.
	// Underscore tokens fail this check.
	IsAlphanumeric bool `json:"is_alphanumeric"`

	// IsNumeric is true when every character is a digit.
	IsNumeric bool `json:"is_numeric"`

	// IsAlpha is true when every character is a letter.
	IsAlpha bool `json:"is_alpha"`
}

// WordVerification holds per-token classification and aggregate
// lexical statistics.
type WordVerification struct {
	TotalWords   int `json:"total_words"`
	AlphaWords   int `json:"alpha_words"`
	NumericWords int `json:"numeric_words"`

	// AlphanumericWords counts mixed tokens: neither fully alphabetic
	// nor fully numeric.
	AlphanumericWords int `json:"alphanumeric_words"`

	// AverageWordLength is the mean token length, 0 with no tokens.
	AverageWordLength float64 `json:"average_word_length"`

	// UniqueWords counts distinct token values, case-sensitive.
	UniqueWords int `json:"unique_words"`

	// WordDetails is the ordered per-token analysis, truncated to the
	// first 100 entries.
	WordDetails []WordDetail `json:"word_details"`
}

// HashSet holds the content-addressed digests of a record. All values
// are lower-case hex.
type HashSet struct {
	// MD5, SHA1, SHA256 and SHA512 digest the UTF-8 bytes of the raw text.
	MD5    string `json:"md5"`
	SHA1   string `json:"sha1"`
	SHA256 string `json:"sha256"`
	SHA512 string `json:"sha512"`

	// CleanedSHA256 digests the UTF-8 bytes of the cleaned text.
	CleanedSHA256 string `json:"cleaned_sha256"`
}

// ReviewRecord is the reviewer's output over an extraction record.
type ReviewRecord struct {
	PointByPointValidation PointValidation  `json:"point_by_point_validation"`
	WordByWordVerification WordVerification `json:"word_by_word_verification"`
	Hash                   HashSet          `json:"hash"`
	OverallStatus          Status           `json:"overall_status"`
}
