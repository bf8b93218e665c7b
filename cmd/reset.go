package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/witsiq/witsiq/internal/history"
	"github.com/witsiq/witsiq/internal/session"
	"github.com/witsiq/witsiq/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear history and session data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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
		if err := h.ClearTestResults(ctx); err != nil {
			return err
		}
		if err := h.ClearSearches(ctx); err != nil {
			return err
		}
		if err := session.NewGuard(st).Clear(ctx); err != nil {
			return err
		}

		fmt.Println("History and session data cleared.")
		return nil
	},
}
