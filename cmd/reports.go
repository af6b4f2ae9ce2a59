package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drillquiz/drillquiz/internal/remote"
	"github.com/drillquiz/drillquiz/internal/report"
	"github.com/drillquiz/drillquiz/internal/store"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect submitted training reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submitted reports, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, st, err := buildAggregator(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		reports, err := agg.ListReports(cmd.Context())
		if err != nil {
			return err
		}

		term, _ := cmd.Flags().GetString("search")
		reports = report.Search(reports, term)

		if len(reports) == 0 {
			fmt.Println("No reports found.")
			return nil
		}
		for _, r := range reports {
			fmt.Printf("%s  %-24s %-16s %s\n",
				r.SubmissionDate.Format("2006-01-02 15:04"),
				r.User.FullName, r.User.Username, passFail(r.OverallResult))
		}
		return nil
	},
}

var reportsShowCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Print the full text of one report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, st, err := buildAggregator(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		quizzes, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		reports, err := agg.ListReports(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range reports {
			if r.ID == args[0] {
				fmt.Print(report.RenderSummary(r, quizzes))
				return nil
			}
		}
		return fmt.Errorf("no report with id %q", args[0])
	},
}

var reportsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all submitted reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, st, err := buildAggregator(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := agg.ClearAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All reports cleared.")
		return nil
	},
}

func buildAggregator(cmd *cobra.Command) (*report.Aggregator, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	var remoteStore report.RemoteStore
	if api := resolveAPIBase(cmd); api != "" {
		remoteStore = remote.NewClient(api)
	}
	return report.NewAggregator(remoteStore, st.Reports()), st, nil
}

func passFail(passed bool) string {
	if passed {
		return "Pass"
	}
	return "Fail"
}

func init() {
	reportsListCmd.Flags().String("search", "", "Filter by name or username (case-insensitive substring)")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsShowCmd)
	reportsCmd.AddCommand(reportsClearCmd)
}
