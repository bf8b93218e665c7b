package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/witsiq/witsiq/internal/history"
	"github.com/witsiq/witsiq/internal/llm"
	"github.com/witsiq/witsiq/internal/quizgen"
	"github.com/witsiq/witsiq/internal/session"
	"github.com/witsiq/witsiq/internal/store"
	"github.com/witsiq/witsiq/internal/tui"
)

const (
	minQuestions = 5
	maxQuestions = 20
)

var difficulties = []string{"Basic", "Intermediate", "Advanced"}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		practice, _ := cmd.Flags().GetBool("practice")
		force, _ := cmd.Flags().GetBool("force")

		if err := quizgen.ValidateTopic(topic); err != nil {
			return err
		}
		difficulty, err := normalizeDifficulty(difficulty)
		if err != nil {
			return err
		}
		if count < minQuestions || count > maxQuestions {
			return fmt.Errorf("count must be between %d and %d", minQuestions, maxQuestions)
		}

		mode := quizgen.ModeTest
		if practice {
			mode = quizgen.ModePractice
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		guard := session.NewGuard(st)
		if !force && guard.IsDuplicate(ctx, topic, string(mode)) {
			fmt.Printf("You started a %s session on %q less than an hour ago.\n", mode, topic)
			fmt.Println("Re-run with --force to start anyway.")
			return nil
		}

		provider, err := llm.NewProviderFromEnv(ctx, st)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := quizgen.NewService(quizgen.NewGenerator(provider, quizgen.DefaultConfig()), guard, quizgen.DefaultConfig())
		defer svc.Close()

		guard.Record(ctx, topic, string(mode))

		return tui.Run(tui.Options{
			Source:     svc,
			History:    history.New(st),
			Topic:      topic,
			Difficulty: difficulty,
			Mode:       mode,
			Count:      count,
		})
	},
}

func normalizeDifficulty(d string) (string, error) {
	for _, known := range difficulties {
		if strings.EqualFold(d, known) {
			return known, nil
		}
	}
	return "", fmt.Errorf("difficulty must be one of: %s", strings.Join(difficulties, ", "))
}

func init() {
	quizCmd.Flags().String("topic", "", "Topic to be quizzed on (required)")
	quizCmd.Flags().String("difficulty", "Basic", "Difficulty: Basic, Intermediate, or Advanced")
	quizCmd.Flags().Int("count", 10, "Number of questions (5-20)")
	quizCmd.Flags().Bool("practice", false, "Practice mode: see the answer after every question")
	quizCmd.Flags().Bool("force", false, "Start even if the same session was run within the last hour")
	quizCmd.MarkFlagRequired("topic")
}
