// Package report assembles, submits, and aggregates training reports.
// Reports are immutable snapshots: verdicts are computed once at
// submission time and never recomputed.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/scoring"
	"github.com/drillquiz/drillquiz/internal/session"
)

// UserRef identifies the reporting user without credentials.
type UserRef struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

// TrainingReport is the frozen record submitted to the administrator.
// OverallResult is the submitted verdict and equals the pooled result; the
// two policy verdicts are also carried by name.
type TrainingReport struct {
	ID                   string           `json:"id"`
	User                 UserRef          `json:"user"`
	QuizProgress         session.Progress `json:"quizProgress"`
	OverallResult        bool             `json:"overallResult"`
	OverallResultPooled  bool             `json:"overallResultPooled"`
	OverallResultAllPass bool             `json:"overallResultAllPass"`
	SubmissionDate       time.Time        `json:"submissionDate"`
}

// New assembles a report from a completed session's progress. The id is
// derived from the username and submission timestamp and is the
// de-duplication key at the aggregation layer. The progress map is deep
// copied so later session mutations cannot leak into the record.
func New(user UserRef, quizzes []catalog.Quiz, progress session.Progress, now time.Time) TrainingReport {
	pooled := scoring.OverallPooled(quizzes, progress)
	return TrainingReport{
		ID:                   fmt.Sprintf("%s-%d", user.Username, now.UnixMilli()),
		User:                 user,
		QuizProgress:         progress.Clone(),
		OverallResult:        pooled,
		OverallResultPooled:  pooled,
		OverallResultAllPass: scoring.OverallAllPass(quizzes, progress),
		SubmissionDate:       now,
	}
}

// RemoteStore is the remote report store collaborator.
type RemoteStore interface {
	Append(ctx context.Context, r TrainingReport) error
	List(ctx context.Context) ([]TrainingReport, error)
	Clear(ctx context.Context) error
}

// FallbackStore is the local durable store used when the remote is
// unreachable. Reading an empty store yields an empty sequence.
type FallbackStore interface {
	Append(ctx context.Context, r TrainingReport) error
	List(ctx context.Context) ([]TrainingReport, error)
	Clear(ctx context.Context) error
}
