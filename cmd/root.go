package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "drillquiz",
	Short: "Mandatory training quiz runner",
	Long:  "DrillQuiz — terminal app for running mandatory employee training quizzes and submitting the results report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DRILLQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Base URL of the report server (overrides DRILLQUIZ_API env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a quiz catalog JSON file (default: built-in catalog)")

	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DRILLQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveAPIBase returns the report server base URL, or "" when none is
// configured. An empty value means offline mode: reports go to the local
// fallback store only.
func resolveAPIBase(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		return u
	}
	return os.Getenv("DRILLQUIZ_API")
}

// loadCatalog returns the quiz catalog from --catalog when given, or the
// built-in catalog otherwise.
func loadCatalog(cmd *cobra.Command) ([]catalog.Quiz, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return catalog.Load(p)
	}
	return catalog.Default(), nil
}
