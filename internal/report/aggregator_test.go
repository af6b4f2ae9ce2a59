package report

import (
	"context"
	"testing"
	"time"
)

func ts(day int) time.Time {
	return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
}

func TestListReportsSortedDesc(t *testing.T) {
	remote := &fakeStore{reports: []TrainingReport{
		{ID: "a-1", User: UserRef{Username: "a"}, SubmissionDate: ts(1)},
		{ID: "c-3", User: UserRef{Username: "c"}, SubmissionDate: ts(3)},
		{ID: "b-2", User: UserRef{Username: "b"}, SubmissionDate: ts(2)},
	}}
	agg := NewAggregator(remote, &fakeStore{})

	reports, err := agg.ListReports(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"c-3", "b-2", "a-1"}
	if len(reports) != len(want) {
		t.Fatalf("reports = %d, want %d", len(reports), len(want))
	}
	for i, id := range want {
		if reports[i].ID != id {
			t.Errorf("reports[%d].ID = %q, want %q", i, reports[i].ID, id)
		}
	}
}

func TestListReportsDeduplicatesByID(t *testing.T) {
	remote := &fakeStore{reports: []TrainingReport{
		{ID: "a-1", SubmissionDate: ts(2)},
		{ID: "a-1", SubmissionDate: ts(2)},
		{ID: "b-2", SubmissionDate: ts(1)},
	}}
	agg := NewAggregator(remote, &fakeStore{})

	reports, err := agg.ListReports(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("reports = %d, want 2 after de-dup", len(reports))
	}
}

func TestListReportsFallsBack(t *testing.T) {
	remote := &fakeStore{fail: true}
	fallback := &fakeStore{reports: []TrainingReport{
		{ID: "a-1", SubmissionDate: ts(1)},
	}}
	agg := NewAggregator(remote, fallback)

	reports, err := agg.ListReports(context.Background())
	if err != nil {
		t.Fatalf("list with failing remote: %v", err)
	}
	if len(reports) != 1 || reports[0].ID != "a-1" {
		t.Errorf("unexpected fallback result: %+v", reports)
	}
}

func TestListReportsOffline(t *testing.T) {
	fallback := &fakeStore{reports: []TrainingReport{
		{ID: "a-1", SubmissionDate: ts(1)},
	}}
	agg := NewAggregator(nil, fallback)

	reports, err := agg.ListReports(context.Background())
	if err != nil {
		t.Fatalf("list offline: %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("reports = %d, want 1", len(reports))
	}
}

func TestSearch(t *testing.T) {
	reports := []TrainingReport{
		{ID: "1", User: UserRef{FullName: "Jane Doe", Username: "jdoe99"}},
		{ID: "2", User: UserRef{FullName: "John Smith", Username: "jsmith"}},
		{ID: "3", User: UserRef{FullName: "Ada Lovelace", Username: "ada"}},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term returns all", "", []string{"1", "2", "3"}},
		{"whitespace term returns all", "   ", []string{"1", "2", "3"}},
		{"full name case-insensitive", "jane", []string{"1"}},
		{"username substring", "smith", []string{"2"}},
		{"shared prefix", "J", []string{"1", "2"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(reports, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("matches = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestClearAllKeepsLocalOnRemoteFailure(t *testing.T) {
	remote := &fakeStore{fail: true}
	fallback := &fakeStore{reports: []TrainingReport{{ID: "a-1"}}}
	agg := NewAggregator(remote, fallback)

	if err := agg.ClearAll(context.Background()); err == nil {
		t.Fatal("expected error when remote clear fails")
	}
	if fallback.clearCalls != 0 {
		t.Error("local store must not be cleared when the remote clear failed")
	}
	if len(fallback.reports) != 1 {
		t.Error("local reports were dropped despite remote failure")
	}
}

func TestClearAllClearsBoth(t *testing.T) {
	remote := &fakeStore{reports: []TrainingReport{{ID: "a-1"}}}
	fallback := &fakeStore{reports: []TrainingReport{{ID: "a-1"}}}
	agg := NewAggregator(remote, fallback)

	if err := agg.ClearAll(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(remote.reports) != 0 || len(fallback.reports) != 0 {
		t.Error("expected both stores cleared")
	}
}

func TestClearAllOffline(t *testing.T) {
	fallback := &fakeStore{reports: []TrainingReport{{ID: "a-1"}}}
	agg := NewAggregator(nil, fallback)

	if err := agg.ClearAll(context.Background()); err != nil {
		t.Fatalf("clear offline: %v", err)
	}
	if len(fallback.reports) != 0 {
		t.Error("expected local store cleared in offline mode")
	}
}
