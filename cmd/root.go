package cmd

import (
	"github.com/spf13/cobra"

	"github.com/witsiq/witsiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "witsiq",
	Short: "AI study companion",
	Long:  "WitsIQ — terminal study app that generates quizzes and revision notes for any topic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WITSIQ_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then WITSIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
