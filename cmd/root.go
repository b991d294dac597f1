package cmd

import (
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diagquiz",
	Short: "Business diagnostic quiz for Singularity Agency",
	Long:  "Diagquiz — terminal questionnaire that profiles a business and submits the answers for a personalized automation proposal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DIAGQUIZ_DB env var)")
	rootCmd.Flags().String("webhook", "", "Result webhook URL (overrides the built-in endpoint)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DIAGQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
