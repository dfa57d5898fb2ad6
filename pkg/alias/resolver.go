package alias

import (
	"math"
	"strings"
)

// resolveThreshold gates resolution: a name resolves only when its best
// partial-match score is strictly greater than this value.
const resolveThreshold = 90

// Resolver maps a free-text instrument name to a canonical law id by
// fuzzy-matching it against every alias in the index. Safe for concurrent
// use; the index is never mutated.
type Resolver struct {
	index *Index
}

// NewResolver creates a resolver over a frozen index.
func NewResolver(index *Index) *Resolver {
	return &Resolver{index: index}
}

// Resolve returns the canonical id of the best-matching alias, or false when
// no alias scores above the threshold. Ties at the same score keep the
// earlier alias in index order.
func (r *Resolver) Resolve(name string) (LawID, bool) {
	lowered := strings.ToLower(name)

	best := 0
	var bestID LawID
	for _, e := range r.index.entries {
		score := partialRatio(lowered, e.alias)
		if score > best {
			best = score
			bestID = e.id
		}
	}
	if best <= resolveThreshold {
		return 0, false
	}
	return bestID, true
}

// partialRatio scores two strings 0..100 by sliding the shorter one over
// every equal-length window of the longer and taking the best normalized
// Levenshtein similarity.
func partialRatio(s1, s2 string) int {
	shorter, longer := []rune(s1), []rune(s2)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := longer[i : i+len(shorter)]
		dist := levenshteinDistance(shorter, window)
		score := int(math.Round(100 * (1 - float64(dist)/float64(len(shorter)))))
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// levenshteinDistance computes the edit distance between two rune slices
// using a two-row dynamic programming table.
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
