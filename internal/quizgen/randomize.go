package quizgen

import "math/rand/v2"

// randomizeOptions takes options as returned by the model, where the
// first entry is the correct answer by prompt contract, and returns them
// with the correct answer at a uniformly random position. The three
// distractors are Fisher-Yates shuffled first, then the correct answer
// is spliced in. If the model violates the "options[0] is correct"
// contract the result silently mislabels the answer; that contract is
// pinned in the prompt and not re-checked here.
func randomizeOptions(options []string) (shuffled []string, correctIndex int) {
	if len(options) == 0 {
		return nil, 0
	}

	correct := options[0]
	rest := make([]string, len(options)-1)
	copy(rest, options[1:])

	for i := len(rest) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}

	pos := rand.IntN(len(options))
	out := make([]string, 0, len(options))
	out = append(out, rest[:pos]...)
	out = append(out, correct)
	out = append(out, rest[pos:]...)

	return out, pos
}
