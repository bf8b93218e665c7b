package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/witsiq/witsiq/internal/history"
	"github.com/witsiq/witsiq/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past test results and note searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		searches, _ := cmd.Flags().GetBool("searches")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		h := history.New(st)

		if searches {
			items, err := h.Searches(ctx)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No searches yet.")
				return nil
			}
			for _, s := range items {
				fmt.Printf("%s  %-30s %s\n", s.Timestamp.Format("2006-01-02 15:04"), s.Topic, strings.Join(s.Keywords, ", "))
			}
			return nil
		}

		results, err := h.TestResults(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  %-30s %-12s %3d%%  (%d/%d in %ds)\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				r.Topic, r.Difficulty, r.Score,
				r.CorrectAnswers, r.QuestionsCount, r.TimeSpentSecs)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Bool("searches", false, "Show note searches instead of test results")
}
