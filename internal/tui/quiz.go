// Package tui runs the interactive quiz session.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/witsiq/witsiq/internal/history"
	"github.com/witsiq/witsiq/internal/quizgen"
	"github.com/witsiq/witsiq/internal/ui/theme"
)

// QuestionSource produces the next unique question for a session. The
// quizgen service is the production implementation.
type QuestionSource interface {
	NextQuestion(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Question, error)
}

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
	phaseError
)

// Options configures a quiz session.
type Options struct {
	Source     QuestionSource
	History    *history.History // nil disables result persistence
	Topic      string
	Difficulty string
	Mode       quizgen.Mode
	Count      int
}

// Model is the Bubble Tea model for one quiz session.
type Model struct {
	opts      Options
	phase     phase
	spinner   spinner.Model
	questions []quizgen.Question
	selected  int
	correct   int
	errMsg    string
	saveErr   error
	startedAt time.Time
	width     int
	height    int
}

// NewModel creates a quiz session model.
func NewModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Selected

	return Model{
		opts:      opts,
		phase:     phaseLoading,
		spinner:   sp,
		startedAt: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchNext())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case questionReadyMsg:
		return m.handleQuestionReady(msg)

	case resultSavedMsg:
		m.saveErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleQuestionReady(msg questionReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// A partial session still ends in a summary.
		if len(m.questions) > 0 {
			fmt.Fprintln(os.Stderr, "warning:", quizgen.UserMessage(msg.Err))
			return m.finish()
		}
		m.phase = phaseError
		m.errMsg = quizgen.UserMessage(msg.Err)
		return m, nil
	}

	m.questions = append(m.questions, *msg.Question)
	m.selected = 0
	m.phase = phaseQuestion
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseError, phaseSummary:
		return m, tea.Quit

	case phaseFeedback:
		return m.advance()

	case phaseQuestion:
		q := &m.questions[len(m.questions)-1]
		switch key {
		case "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(q.Options)-1 {
				m.selected++
			}
			return m, nil
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				m.selected = idx
				return m.submit()
			}
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	q := &m.questions[len(m.questions)-1]
	q.UserAnswer = m.selected
	if m.selected == q.CorrectIndex {
		m.correct++
	}

	// Practice mode reveals the answer immediately; test mode keeps the
	// verdict for the summary.
	if m.opts.Mode == quizgen.ModePractice {
		m.phase = phaseFeedback
		return m, nil
	}
	return m.advance()
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if len(m.questions) >= m.opts.Count {
		return m.finish()
	}
	m.phase = phaseLoading
	return m, tea.Batch(m.spinner.Tick, m.fetchNext())
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.phase = phaseSummary
	return m, m.saveResult()
}

// fetchNext asks the source for one more question, feeding back every
// question already shown so it is not repeated.
func (m Model) fetchNext() tea.Cmd {
	input := quizgen.GenerateInput{
		Topic:      m.opts.Topic,
		Difficulty: m.opts.Difficulty,
		Mode:       m.opts.Mode,
		Existing:   append([]quizgen.Question(nil), m.questions...),
	}
	source := m.opts.Source
	return func() tea.Msg {
		q, err := source.NextQuestion(context.Background(), input)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (m Model) saveResult() tea.Cmd {
	if m.opts.History == nil || m.opts.Mode != quizgen.ModeTest || len(m.questions) == 0 {
		return nil
	}

	result := history.TestResult{
		Topic:          m.opts.Topic,
		Difficulty:     m.opts.Difficulty,
		Score:          m.scorePercent(),
		QuestionsCount: len(m.questions),
		CorrectAnswers: m.correct,
		TimeSpentSecs:  int(time.Since(m.startedAt).Seconds()),
		Questions:      append([]quizgen.Question(nil), m.questions...),
	}
	hist := m.opts.History
	return func() tea.Msg {
		return resultSavedMsg{Err: hist.AddTestResult(context.Background(), result)}
	}
}

func (m Model) scorePercent() int {
	if len(m.questions) == 0 {
		return 0
	}
	return m.correct * 100 / len(m.questions)
}

// Run starts the quiz program.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}
