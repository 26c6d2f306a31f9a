package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuationStripper removes the fixed punctuation set `.,/#!$%^&*;:{}=-_` + "`~()".
// Other Unicode punctuation is kept as part of tokens.
var punctuationStripper = strings.NewReplacer(
	".", "", ",", "", "/", "", "#", "", "!", "", "$", "", "%", "",
	"^", "", "&", "", "*", "", ";", "", ":", "", "{", "", "}", "",
	"=", "", "-", "", "_", "", "`", "", "~", "", "(", "", ")", "",
)

// IsSpace reports whether r separates tokens. The set is the ECMAScript
// WhiteSpace and LineTerminator classes: it includes U+FEFF and excludes
// U+0085, unlike unicode.IsSpace.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// Tokenize normalizes text and splits it into tokens.
//
// Text that is empty after stripping and trimming yields a single empty token,
// never an empty slice, so every message contributes at least one term.
func Tokenize(text string) []string {
	cleaned := strings.TrimFunc(punctuationStripper.Replace(text), IsSpace)
	lowered := cases.Lower(language.Und).String(cleaned)
	if lowered == "" {
		return []string{""}
	}
	return strings.FieldsFunc(lowered, IsSpace)
}

// TermFrequency counts occurrences of each token.
func TermFrequency(tokens []string) map[string]int {
	freqs := make(map[string]int, len(tokens))
	for _, token := range tokens {
		freqs[token]++
	}
	return freqs
}
