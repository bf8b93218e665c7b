package quizgen

import "strings"

// DefaultUniqueLimit is the dedup filter's default accept cap.
const DefaultUniqueLimit = 5

// FilterUnique returns up to limit candidates that are pairwise
// non-duplicate and not near-duplicates of anything in history,
// preserving candidate order. Scanning stops as soon as limit questions
// are accepted; later candidates are never examined. That early exit is
// deliberate and observable (it decides which duplicates get dropped vs.
// skipped), so don't turn this into a best-subset search.
func FilterUnique(sim *Similarity, candidates, history []Question, limit int) []Question {
	if limit <= 0 {
		limit = DefaultUniqueLimit
	}

	var accepted []Question
	seen := make(map[string]struct{})

	for _, cand := range candidates {
		normalized := strings.ToLower(strings.TrimSpace(cand.Text))
		if _, dup := seen[normalized]; dup {
			continue
		}

		if similarToAny(sim, cand.Text, history) || similarToAny(sim, cand.Text, accepted) {
			continue
		}

		accepted = append(accepted, cand)
		seen[normalized] = struct{}{}

		if len(accepted) >= limit {
			return accepted
		}
	}

	return accepted
}

func similarToAny(sim *Similarity, text string, against []Question) bool {
	for _, q := range against {
		if sim.Similar(text, q.Text) {
			return true
		}
	}
	return false
}
