// Package search implements the in-memory exercise search engine: text
// normalization across scripts, a weighted multi-key index built once from a
// catalog snapshot, and tiered scored lookup with a bounded edit-distance
// fallback.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain applies Unicode compatibility decomposition (collapsing composed
// forms and half-width katakana) and strips combining marks, so Latin accents
// and kana voicing marks do not discriminate.
var foldChain = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

const (
	hiraganaLo = 'ぁ' // ぁ
	hiraganaHi = 'ゖ' // ゖ
	kanaOffset = 'ァ' - 'ぁ'

	longVowelMark = 'ー' // ー
)

// Normalize turns arbitrary text into its canonical comparison key: folded,
// lowercased, hiragana mapped to katakana, separators and the long-vowel mark
// dropped, and everything outside kana/kanji/Latin letters/digits removed.
// It is total and idempotent; unmapped characters are silently dropped.
func Normalize(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == longVowelMark || r == ' ' || r == '_' || r == '-':
			// not discriminating for exercise names
		case r >= hiraganaLo && r <= hiraganaHi:
			b.WriteRune(r + kanaOffset)
		case unicode.In(r, unicode.Katakana, unicode.Hiragana, unicode.Han, unicode.Latin) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens normalizes input word by word: if the raw input contains a space it
// is split on spaces and each piece normalized independently, otherwise the
// whole input is one token. Pieces that normalize to nothing are dropped.
func Tokens(s string) []string {
	if !strings.Contains(s, " ") {
		if key := Normalize(s); key != "" {
			return []string{key}
		}
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, " ") {
		if key := Normalize(part); key != "" {
			out = append(out, key)
		}
	}
	return out
}
