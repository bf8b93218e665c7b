package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/witsiq/witsiq/internal/history"
	"github.com/witsiq/witsiq/internal/llm"
	"github.com/witsiq/witsiq/internal/notes"
	"github.com/witsiq/witsiq/internal/quizgen"
	"github.com/witsiq/witsiq/internal/store"
)

var notesCmd = &cobra.Command{
	Use:   "notes <topic>",
	Short: "Generate revision notes for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := args[0]

		if err := quizgen.ValidateTopic(topic); err != nil {
			return err
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

		provider, err := llm.NewProviderFromEnv(ctx, st)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := notes.NewService(provider, notes.DefaultConfig())
		defer svc.Close()

		note, err := svc.Generate(ctx, topic)
		if err != nil {
			return fmt.Errorf("%s (%w)", notes.UserMessage(err), err)
		}

		fmt.Println(note.Content)
		fmt.Println()
		fmt.Println("Summary:", note.Summary)
		fmt.Println("Keywords:", strings.Join(note.Keywords, ", "))

		if err := history.New(st).AddSearch(ctx, history.SearchItem{
			Topic:    note.Title,
			Summary:  note.Summary,
			Keywords: note.Keywords,
		}); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: failed to record search:", err)
		}

		return nil
	},
}
