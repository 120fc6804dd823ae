package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SuggestionThreshold is the minimum similarity for ClosestTitle to offer a match.
const SuggestionThreshold = 0.35

// NormalizeTitle trims the title and collapses internal whitespace runs.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// DisplayTitle returns the title in title case for tables and prompts.
// The stored title is never rewritten.
func DisplayTitle(title string) string {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return ""
	}
	return cases.Title(language.Und, cases.NoLower).String(normalized)
}

// EqualFold reports whether two titles match ignoring case and spacing.
func EqualFold(a, b string) bool {
	return fold(NormalizeTitle(a)) == fold(NormalizeTitle(b))
}

// ClosestTitle returns the candidate most similar to query. A case-insensitive
// exact match wins outright; otherwise the best candidate at or above
// SuggestionThreshold is returned. Ties keep the earliest candidate.
func ClosestTitle(query string, candidates []string) (string, float64, bool) {
	for _, candidate := range candidates {
		if EqualFold(query, candidate) {
			return candidate, 1, true
		}
	}

	target := NewFingerprint(query)
	if target == nil {
		return "", 0, false
	}
	var (
		best      string
		bestScore float64
	)
	for _, candidate := range candidates {
		score := CosineSimilarity(target, NewFingerprint(candidate))
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < SuggestionThreshold {
		return "", bestScore, false
	}
	return best, bestScore, true
}
