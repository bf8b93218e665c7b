package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/witsiq/witsiq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		usage, err := st.UsageByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		if len(usage) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		purposes := make([]string, 0, len(usage))
		for p := range usage {
			purposes = append(purposes, p)
		}
		sort.Strings(purposes)

		fmt.Printf("%-20s %10s %10s %14s %14s\n", "PURPOSE", "REQUESTS", "FAILURES", "INPUT TOKENS", "OUTPUT TOKENS")
		for _, p := range purposes {
			u := usage[p]
			fmt.Printf("%-20s %10d %10d %14d %14d\n", p, u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
		}
		return nil
	},
}
