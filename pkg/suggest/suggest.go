// Package suggest finds known option spellings that are close to a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

type candidate struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, most similar first.
// Leading dashes are ignored when scoring, so "-verbose" is as close to "--verbose" as an
// exact match.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	name := trimDashes(target)
	if name == "" || maxResults <= 0 {
		return []string{}
	}

	scored := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if score := similarity(name, trimDashes(c)); score > threshold {
			scored = append(scored, candidate{name: c, score: score})
		}
	}
	slices.SortFunc(scored, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(maxResults, len(scored)))
	for _, c := range scored[:min(maxResults, len(scored))] {
		result = append(result, c.name)
	}
	return result
}

func trimDashes(s string) string {
	return strings.TrimLeft(s, "-")
}

// similarity scores a against b between 0 and 1, case-insensitively. A prefix of b scores
// 0.9, anything else is scored by edit distance.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	return 1.0 - float64(distance(a, b))/float64(max(len(a), len(b)))
}

// distance is the Levenshtein distance between a and b, computed with two rows.
func distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
