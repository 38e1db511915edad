package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes raw text for comparison: NFKC normalization,
// lowercasing, and collapsing whitespace runs to single spaces. The same
// function is applied to document text and keywords so matching stays
// normalization-consistent.
func Normalize(raw string) string {
	s := norm.NFKC.String(strings.TrimSpace(raw))
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// isWordRune reports whether r belongs inside a token.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize splits text into word tokens in document order. Input is
// normalized first; any rune that is neither a word rune nor whitespace
// becomes a separator. Empty input yields a nil slice.
func Tokenize(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, Normalize(text))
	return strings.Fields(mapped)
}

// WordCount returns the number of tokens in text. The length score and
// the density denominator both count words this way.
func WordCount(text string) int {
	return len(Tokenize(text))
}

// ExtractKeywords returns candidate keywords: tokens of at least
// minLength runes that are not stop words. minLength <= 0 falls back to
// DefaultMinKeywordLength and a nil stopWords set falls back to the
// built-in English set. Duplicates are kept; frequency is the density
// analyzer's job.
func ExtractKeywords(text string, minLength int, stopWords map[string]bool) []string {
	if minLength <= 0 {
		minLength = DefaultMinKeywordLength
	}
	if stopWords == nil {
		stopWords = defaultStopWords
	}

	tokens := Tokenize(text)
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len([]rune(tok)) < minLength {
			continue
		}
		if stopWords[tok] {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}
