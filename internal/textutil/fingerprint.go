package textutil

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

const shingleBoundary = ' '

// fold returns the case-folded form of s. Casers are stateful, so each call
// builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Fingerprint represents a term-frequency vector for text similarity comparison.
type Fingerprint struct {
	terms map[string]float64
	norm  float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text contains no letters or digits.
func NewFingerprint(text string) *Fingerprint {
	terms := Shingles(text)
	if len(terms) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{terms: counts, norm: math.Sqrt(norm)}
}

// Tokenize splits text into case-folded words of letters and digits.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if fields == nil {
		return []string{}
	}
	return fields
}

// Shingles returns the boundary-padded character bigrams of every word in text.
func Shingles(text string) []string {
	var out []string
	for _, word := range Tokenize(text) {
		runes := append([]rune{shingleBoundary}, []rune(word)...)
		runes = append(runes, shingleBoundary)
		for i := 0; i+1 < len(runes); i++ {
			out = append(out, string(runes[i:i+2]))
		}
	}
	return out
}

// TermCount returns the number of unique terms in the fingerprint.
func (f *Fingerprint) TermCount() int {
	if f == nil {
		return 0
	}
	return len(f.terms)
}
