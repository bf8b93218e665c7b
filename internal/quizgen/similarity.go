package quizgen

import (
	"strings"
	"sync"
)

// Two question texts are near-duplicates when their normalized
// edit-distance similarity exceeds this threshold.
const similarityThreshold = 0.8

// Normalized texts whose lengths differ by more than this are assumed
// distinct without computing the edit distance.
const lengthPrefilter = 10

// similarityMemoCap bounds the verdict memo; the oldest-inserted entry
// is dropped when exceeded.
const similarityMemoCap = 1000

// pairKey is an order-insensitive memo key for a pair of question texts.
type pairKey struct {
	a, b string
}

func makePairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Similarity decides whether two question texts are near-duplicates,
// memoizing verdicts across the repeated pairwise checks a batch incurs.
type Similarity struct {
	mu    sync.Mutex
	memo  map[pairKey]bool
	order []pairKey
}

// NewSimilarity creates an empty similarity engine.
func NewSimilarity() *Similarity {
	return &Similarity{memo: make(map[pairKey]bool)}
}

// Similar reports whether a and b are near-duplicate question texts.
// Keys are the literal (non-normalized) texts, so the memo is consulted
// before any normalization work.
func (s *Similarity) Similar(a, b string) bool {
	key := makePairKey(a, b)

	s.mu.Lock()
	if verdict, ok := s.memo[key]; ok {
		s.mu.Unlock()
		return verdict
	}
	s.mu.Unlock()

	verdict := similarityScore(normalizeText(a), normalizeText(b)) > similarityThreshold

	s.mu.Lock()
	if _, ok := s.memo[key]; !ok {
		s.memo[key] = verdict
		s.order = append(s.order, key)
		if len(s.memo) > similarityMemoCap {
			delete(s.memo, s.order[0])
			s.order = s.order[1:]
		}
	}
	s.mu.Unlock()

	return verdict
}

// normalizeText lower-cases and strips everything that is not an ASCII
// letter or digit.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// similarityScore is 1 - distance/maxLen over normalized texts, with 0
// for an empty pair (two empty strings are not considered similar).
func similarityScore(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > lengthPrefilter {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes the edit distance with unit insert, delete and
// substitute costs, using a two-row rolling DP table.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}
