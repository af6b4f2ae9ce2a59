package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/drillquiz/drillquiz/internal/creds"
)

// Outcome describes how a submission was confirmed.
type Outcome int

const (
	OutcomeDelivered Outcome = iota // Remote append succeeded
	OutcomeFellBack                 // Remote failed, report stored locally
)

// Submitter delivers reports and expires the submitting account.
//
// Policy: silent fallback. A failed remote append stores the report in the
// local fallback and the submission still counts as confirmed; there is no
// queued retry. The account expiry runs exactly once per report id, so a
// duplicate Submit call for the same report neither double-appends nor
// re-expires.
type Submitter struct {
	remote   RemoteStore // nil means offline mode
	fallback FallbackStore
	creds    creds.Store

	mu   sync.Mutex
	done map[string]Outcome
}

// NewSubmitter creates a Submitter. remote may be nil when no report
// server is configured.
func NewSubmitter(remote RemoteStore, fallback FallbackStore, credStore creds.Store) *Submitter {
	return &Submitter{
		remote:   remote,
		fallback: fallback,
		creds:    credStore,
		done:     make(map[string]Outcome),
	}
}

// Submit delivers the report remotely, falling back to local persistence,
// then expires the submitting user's account. Serialized so there is a
// single in-flight submission per Submitter.
func (s *Submitter) Submit(ctx context.Context, r TrainingReport) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if outcome, ok := s.done[r.ID]; ok {
		return outcome, nil
	}

	outcome := OutcomeDelivered
	if s.remote == nil {
		outcome = OutcomeFellBack
	} else if err := s.remote.Append(ctx, r); err != nil {
		outcome = OutcomeFellBack
	}
	if outcome == OutcomeFellBack {
		if err := s.fallback.Append(ctx, r); err != nil {
			return outcome, fmt.Errorf("store report locally: %w", err)
		}
	}

	if err := s.creds.SetStatus(ctx, r.User.Username, creds.StatusExpired); err != nil {
		return outcome, fmt.Errorf("expire account %q: %w", r.User.Username, err)
	}

	s.done[r.ID] = outcome
	return outcome, nil
}
