package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
	currencyAmountRegex  = regexp.MustCompile(`\$\s*\d+(?:\.\d+)?`)
	numericUnitRegex     = regexp.MustCompile(`^\d+(?:\.\d+)?([a-z]+)?$`)
)

// Normalizer reduces free text to a comparable canonical form. It is a
// pure function holder: no I/O, no state beyond the injected tables.
type Normalizer struct {
	vocab *Vocabulary
}

// NewNormalizer creates a normalizer backed by the given vocabulary.
// A nil vocabulary falls back to the built-in tables.
func NewNormalizer(vocab *Vocabulary) *Normalizer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Normalizer{vocab: vocab}
}

// Normalize lowercases, strips currency/quantity/unit tokens, removes
// descriptor adjectives and collapses whitespace. It is idempotent and
// never fails; unusable input normalizes to the empty string.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = stripDiacritics(s)
	s = stripVulgarFractions(s)
	s = currencyAmountRegex.ReplaceAllString(s, " ")
	s = nonAlphanumericRegex.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if n.isQuantityToken(word) {
			continue
		}
		if n.vocab.Units[word] {
			continue
		}
		if n.vocab.Descriptors[word] {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}

// ExpandAbbreviations replaces whole words found in the abbreviation
// table with their expansions, word for word and order preserving.
// Unknown words pass through untouched.
func (n *Normalizer) ExpandAbbreviations(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	expanded := make([]string, 0, len(words))
	for _, word := range words {
		if replacement, ok := n.vocab.Abbreviations[strings.ToLower(word)]; ok {
			expanded = append(expanded, replacement...)
			continue
		}
		expanded = append(expanded, word)
	}

	return strings.Join(expanded, " ")
}

// isQuantityToken reports whether a token is a bare number or a number
// glued to a unit word ("2", "1.5", "2lb", "500ml")
func (n *Normalizer) isQuantityToken(word string) bool {
	m := numericUnitRegex.FindStringSubmatch(word)
	if m == nil {
		return false
	}
	if m[1] == "" {
		return true
	}
	return n.vocab.Units[m[1]]
}

// stripVulgarFractions replaces Unicode fraction runes with spaces
func stripVulgarFractions(s string) string {
	return strings.Map(func(r rune) rune {
		if vulgarFractions[r] {
			return ' '
		}
		return r
	}, s)
}

// stripDiacritics decomposes accented runes and drops the combining
// marks so "jalapeño" and "jalapeno" compare equal
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
