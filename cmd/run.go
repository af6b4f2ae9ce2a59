package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drillquiz/drillquiz/internal/remote"
	"github.com/drillquiz/drillquiz/internal/report"
	"github.com/drillquiz/drillquiz/internal/store"
	"github.com/drillquiz/drillquiz/internal/tui"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	quizzes, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var remoteStore report.RemoteStore
	if api := resolveAPIBase(cmd); api != "" {
		remoteStore = remote.NewClient(api)
	}

	users := st.Users()
	return tui.Run(tui.Deps{
		Catalog:   quizzes,
		Users:     users,
		Submitter: report.NewSubmitter(remoteStore, st.Reports(), users),
	})
}
