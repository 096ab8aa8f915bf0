package services

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// totalChecks is the size of the fixed validation battery.
const totalChecks = 4

// maxWordDetails caps the per-token detail retained in a review.
// Aggregate statistics still scan the full token sequence.
const maxWordDetails = 100

// warningWordThreshold is the word count below which a non-empty
// record is flagged WARNING instead of VALID.
const warningWordThreshold = 5

// Reviewer validates and verifies an extraction record and generates
// its content digests. It holds only the immutable rule thresholds.
type Reviewer struct {
	rules domain.ValidationRules
}

// ReviewerOption configures the reviewer.
type ReviewerOption func(*Reviewer)

// WithMinWords sets the minimum word-count threshold.
func WithMinWords(n int) ReviewerOption {
	return func(r *Reviewer) {
		if n > 0 {
			r.rules.MinWords = n
		}
	}
}

// WithMinChars sets the minimum character-count threshold.
func WithMinChars(n int) ReviewerOption {
	return func(r *Reviewer) {
		if n > 0 {
			r.rules.MinChars = n
		}
	}
}

// NewReviewer creates a reviewer with the default rule table.
func NewReviewer(opts ...ReviewerOption) *Reviewer {
	r := &Reviewer{
		rules: domain.DefaultValidationRules(),
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Review runs the full battery over an extraction record. All review
// operations are total functions; a zero-value record reviews cleanly
// with every field defaulting independently.
func (r *Reviewer) Review(rec domain.ExtractionRecord) domain.ReviewRecord {
	return domain.ReviewRecord{
		PointByPointValidation: r.ValidatePoints(rec.Text, rec.Metadata),
		WordByWordVerification: r.VerifyWords(rec.Text),
		Hash:                   r.GenerateHash(rec),
		OverallStatus:          r.OverallStatus(rec.Text),
	}
}

// ValidatePoints evaluates the four fixed rules against the record.
// Checks run independently; one failing does not short-circuit the rest.
func (r *Reviewer) ValidatePoints(text domain.TextStats, meta domain.SourceMetadata) domain.PointValidation {
	v := domain.PointValidation{
		WordCount: domain.CheckResult{
			Value: text.WordCount,
			Valid: text.WordCount >= r.rules.MinWords,
			Rule:  fmt.Sprintf("minimum %d words", r.rules.MinWords),
		},
		CharCount: domain.CheckResult{
			Value: text.CharCount,
			Valid: text.CharCount >= r.rules.MinChars,
			Rule:  fmt.Sprintf("minimum %d characters", r.rules.MinChars),
		},
		SentenceStructure: domain.CheckResult{
			Value: text.SentenceCount,
			Valid: text.SentenceCount > 0,
			Rule:  "at least one sentence",
		},
		DataSize: domain.CheckResult{
			Value: meta.DataSizeBytes,
			Valid: meta.DataSizeBytes > 0,
			Rule:  "non-empty data",
		},
	}

	passed := 0
	for _, check := range []domain.CheckResult{v.WordCount, v.CharCount, v.SentenceStructure, v.DataSize} {
		if check.Valid {
			passed++
		}
	}

	v.Summary = domain.ValidationSummary{
		TotalChecks: totalChecks,
		Passed:      passed,
		Score:       float64(passed) / float64(totalChecks),
	}

	return v
}

// VerifyWords classifies every token as alpha, numeric or mixed and
// computes aggregate lexical statistics. Per-token detail keeps only
// the first maxWordDetails entries, always the prefix in original order.
func (r *Reviewer) VerifyWords(text domain.TextStats) domain.WordVerification {
	words := text.Words

	detailLen := len(words)
	if detailLen > maxWordDetails {
		detailLen = maxWordDetails
	}
	details := make([]domain.WordDetail, 0, detailLen)

	var alpha, numeric, lengthSum int
	unique := make(map[string]struct{}, len(words))

	for i, w := range words {
		length := utf8.RuneCountInString(w)
		lengthSum += length
		unique[w] = struct{}{}

		switch {
		case isAlpha(w):
			alpha++
		case isNumeric(w):
			numeric++
		}

		if i < maxWordDetails {
			details = append(details, domain.WordDetail{
				Position:       i,
				Word:           w,
				Length:         length,
				IsAlphanumeric: isAlphanumeric(w),
				IsNumeric:      isNumeric(w),
				IsAlpha:        isAlpha(w),
			})
		}
	}

	average := 0.0
	if len(words) > 0 {
		average = float64(lengthSum) / float64(len(words))
	}

	return domain.WordVerification{
		TotalWords:        len(words),
		AlphaWords:        alpha,
		NumericWords:      numeric,
		AlphanumericWords: len(words) - alpha - numeric,
		AverageWordLength: average,
		UniqueWords:       len(unique),
		WordDetails:       details,
	}
}

// GenerateHash computes the digest set for a record: md5, sha1, sha256
// and sha512 over the raw text plus sha256 over the cleaned text.
// The digests content-address the input; they are not a security
// boundary.
func (r *Reviewer) GenerateHash(rec domain.ExtractionRecord) domain.HashSet {
	raw := []byte(rec.Text.Raw)
	cleaned := []byte(rec.Text.Cleaned)

	md5Sum := md5.Sum(raw)
	sha1Sum := sha1.Sum(raw)
	sha256Sum := sha256.Sum256(raw)
	sha512Sum := sha512.Sum512(raw)
	cleanedSum := sha256.Sum256(cleaned)

	return domain.HashSet{
		MD5:           hex.EncodeToString(md5Sum[:]),
		SHA1:          hex.EncodeToString(sha1Sum[:]),
		SHA256:        hex.EncodeToString(sha256Sum[:]),
		SHA512:        hex.EncodeToString(sha512Sum[:]),
		CleanedSHA256: hex.EncodeToString(cleanedSum[:]),
	}
}

// OverallStatus decides the record's verdict: INVALID with no words or
// characters, WARNING below the word threshold, VALID otherwise.
func (r *Reviewer) OverallStatus(text domain.TextStats) domain.Status {
	switch {
	case text.WordCount == 0 || text.CharCount == 0:
		return domain.StatusInvalid
	case text.WordCount < warningWordThreshold:
		return domain.StatusWarning
	default:
		return domain.StatusValid
	}
}

// isAlpha reports whether the token is non-empty and entirely letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isNumeric reports whether the token is non-empty and entirely digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isAlphanumeric reports whether the token is non-empty and every
// character is a letter or digit. Underscores fail this check even
// though the tokeniser emits them.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
