package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Aggregator is the admin-side view over submitted reports.
type Aggregator struct {
	remote   RemoteStore // nil means offline mode
	fallback FallbackStore
}

// NewAggregator creates an Aggregator. remote may be nil.
func NewAggregator(remote RemoteStore, fallback FallbackStore) *Aggregator {
	return &Aggregator{remote: remote, fallback: fallback}
}

// ListReports returns all reports, most recent first. The remote store is
// tried first; on failure the local fallback list is used. Duplicate
// report ids (a retried submission that landed twice) are collapsed to the
// first occurrence.
func (a *Aggregator) ListReports(ctx context.Context) ([]TrainingReport, error) {
	var reports []TrainingReport
	var err error

	if a.remote != nil {
		reports, err = a.remote.List(ctx)
	}
	if a.remote == nil || err != nil {
		reports, err = a.fallback.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list fallback reports: %w", err)
		}
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].SubmissionDate.After(reports[j].SubmissionDate)
	})

	seen := make(map[string]bool, len(reports))
	out := reports[:0]
	for _, r := range reports {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out, nil
}

// Search filters reports by a case-insensitive substring match against the
// user's full name or username. An empty term returns all reports.
func Search(reports []TrainingReport, term string) []TrainingReport {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return reports
	}
	var out []TrainingReport
	for _, r := range reports {
		if strings.Contains(strings.ToLower(r.User.FullName), term) ||
			strings.Contains(strings.ToLower(r.User.Username), term) {
			out = append(out, r)
		}
	}
	return out
}

// ClearAll removes all reports. With a remote configured, local fallback
// storage is cleared only after the remote clear succeeds; a remote
// failure returns an error and leaves local storage untouched so
// remote-visible reports are never silently dropped. With no remote,
// local storage is cleared directly.
func (a *Aggregator) ClearAll(ctx context.Context) error {
	if a.remote != nil {
		if err := a.remote.Clear(ctx); err != nil {
			return fmt.Errorf("clear remote reports: %w", err)
		}
	}
	if err := a.fallback.Clear(ctx); err != nil {
		return fmt.Errorf("clear fallback reports: %w", err)
	}
	return nil
}
