package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillquiz/drillquiz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate and export quiz catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog JSON file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quizzes, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		questions := 0
		for _, q := range quizzes {
			questions += len(q.Questions)
		}
		fmt.Printf("OK: %d quizzes, %d questions.\n", len(quizzes), questions)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the active catalog to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quizzes, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		data, err := json.MarshalIndent(quizzes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		if err := os.WriteFile(args[0], append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write catalog file: %w", err)
		}
		fmt.Printf("Wrote %d quizzes to %s.\n", len(quizzes), args[0])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
