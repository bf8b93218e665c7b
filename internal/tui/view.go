package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/witsiq/witsiq/internal/quizgen"
	"github.com/witsiq/witsiq/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var content string
	switch m.phase {
	case phaseLoading:
		content = m.renderLoading()
	case phaseQuestion:
		content = m.renderQuestion()
	case phaseFeedback:
		content = m.renderFeedback()
	case phaseSummary:
		content = m.renderSummary()
	case phaseError:
		content = m.renderError()
	}

	v.SetContent(content)
	return v
}

func (m Model) renderLoading() string {
	return fmt.Sprintf("\n  %s %s",
		m.spinner.View(),
		theme.Subtitle.Render(fmt.Sprintf("Generating question %d of %d...", len(m.questions)+1, m.opts.Count)),
	)
}

func (m Model) renderQuestion() string {
	q := m.questions[len(m.questions)-1]

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString("  " + theme.Body.Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.selected {
			b.WriteString("  " + theme.Selected.Render("> "+line))
		} else {
			b.WriteString("    " + theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + theme.Hint.Render("↑↓ navigate · 1-4 pick · Enter submit · Esc quit"))
	return b.String()
}

func (m Model) renderFeedback() string {
	q := m.questions[len(m.questions)-1]

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if q.UserAnswer == q.CorrectIndex {
		b.WriteString("  " + theme.Correct.Render("Correct!"))
	} else {
		b.WriteString("  " + theme.Incorrect.Render("Not quite."))
		b.WriteString("\n  " + theme.Body.Render("Answer: "+q.Options[q.CorrectIndex]))
	}

	b.WriteString("\n\n")
	b.WriteString("  " + theme.Body.Render(q.Explanation))
	b.WriteString("\n\n")
	b.WriteString("  " + theme.Hint.Render("Press any key to continue"))
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString("  " + theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString("  " + theme.Body.Render(fmt.Sprintf("Topic: %s (%s)", m.opts.Topic, m.opts.Difficulty)))
	b.WriteString("\n")
	b.WriteString("  " + theme.Body.Render(fmt.Sprintf("Score: %d%% (%d/%d correct)", m.scorePercent(), m.correct, len(m.questions))))
	b.WriteString("\n\n")

	for _, q := range m.questions {
		mark := theme.Correct.Render("✓")
		if q.UserAnswer != q.CorrectIndex {
			mark = theme.Incorrect.Render("✗")
		}
		if q.UserAnswer == quizgen.NoAnswer {
			mark = theme.Subtitle.Render("-")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, theme.Body.Render(truncate(q.Text, 70))))
	}

	if m.saveErr != nil {
		b.WriteString("\n  " + theme.Warning.Render("Couldn't save this result: "+m.saveErr.Error()))
	}

	b.WriteString("\n  " + theme.Hint.Render("Press any key to exit"))
	return b.String()
}

func (m Model) renderError() string {
	return "\n  " + theme.Incorrect.Render(m.errMsg) +
		"\n\n  " + theme.Hint.Render("Press any key to exit")
}

func (m Model) renderHeader() string {
	mode := "Test"
	if m.opts.Mode == quizgen.ModePractice {
		mode = "Practice"
	}
	return fmt.Sprintf("  %s %s",
		theme.Title.Render(m.opts.Topic),
		theme.Subtitle.Render(fmt.Sprintf("· %s · %s · question %d/%d", m.opts.Difficulty, mode, len(m.questions), m.opts.Count)),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
