package quizgen

import (
	"fmt"
	"strings"
)

const questionSystemPrompt = `You are a quiz author. You write clear, focused multiple-choice questions that test real understanding of a topic, with plausible distractors and thorough explanations.`

// buildBatchUserMessage asks for count questions on the topic at the
// given difficulty. The "first option is correct" line is the contract
// the answer randomizer depends on.
func buildBatchUserMessage(topic, difficulty string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d multiple-choice questions about %q (%s level).\n", count, topic, difficulty)
	b.WriteString(`Each question must:
- Be clear and focused
- Have 4 distinct options
- Include a detailed explanation
- Match the requested difficulty level
- Cover different aspects of the topic
- Follow proper question format (start with a question word or end with ?)
- Have meaningful distractors that are plausible but clearly incorrect
- Explain why the correct answer is right and why the others are wrong
- CRITICAL: The first option (index 0) MUST ALWAYS be the CORRECT answer`)

	return b.String()
}
