// Package text cleans free text for lexical comparison: punctuation
// stripping, lowercasing, Portuguese stopword removal.
package text

import (
	"regexp"
	"strings"
)

// Matches everything outside letters, digits, underscore and whitespace,
// the unicode equivalent of the historical [^\w\s] class.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Normalize cleans a free-text string: strips punctuation, lowercases,
// splits on whitespace, removes Portuguese stopwords and rejoins with a
// single space. Empty or whitespace-only input yields "". Pure.
func Normalize(s string) string {
	return strings.Join(Tokens(s), " ")
}

// Tokens returns the cleaned, lowercased, stopword-free tokens of s in
// input order, duplicates included.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}

	cleaned := nonWord.ReplaceAllString(s, "")
	fields := strings.Fields(strings.ToLower(cleaned))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
