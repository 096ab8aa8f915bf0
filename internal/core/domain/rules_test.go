package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValidationRules(t *testing.T) {
	rules := DefaultValidationRules()

	assert.Equal(t, 1, rules.MinWords)
	assert.Equal(t, 1, rules.MinChars)
}

func TestDefaultSupportedFormats(t *testing.T) {
	formats := DefaultSupportedFormats()

	assert.Equal(t, []string{"txt", "json", "csv", "xml", "html", "md"}, formats)
}

func TestDefaultCommonWords(t *testing.T) {
	words := DefaultCommonWords()

	assert.Equal(t, []string{"the", "is", "at", "which", "on", "a", "an"}, words)
}
