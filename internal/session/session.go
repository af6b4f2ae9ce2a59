// Package session implements the training session state machine: login,
// quiz progress across the catalog, and the transitions toward report
// submission. All state lives in an explicit Session value; transitions are
// synchronous and carry no timing policy (auto-advance and auto-logout are
// caller concerns).
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/creds"
)

// Session tracks one authenticated user's progress through the catalog.
// The zero value is not usable; call New.
type Session struct {
	// ID is a fresh UUID assigned at login.
	ID string

	// State is the current position in the training flow.
	State State

	// Catalog is the fixed, ordered quiz list for this training cycle.
	Catalog []catalog.Quiz

	// FullName and Username identify the authenticated user.
	FullName string
	Username string

	// Progress holds one entry per catalog quiz, keyed by quiz id.
	Progress Progress

	// ActiveQuizID and QuestionIndex locate the cursor while a quiz runs.
	ActiveQuizID  string
	QuestionIndex int

	// answered is true once the current question has an answer recorded
	// in this attempt.
	answered bool
}

// New creates a logged-out session over the given catalog.
func New(cat []catalog.Quiz) *Session {
	return &Session{
		State:   StateLoggedOut,
		Catalog: cat,
	}
}

// Login authenticates against the credential store and initializes a fresh
// progress map. The username is normalized before lookup. Unknown user and
// wrong password both return ErrInvalidCredentials; an expired account
// returns ErrAccountExpired.
func (s *Session) Login(ctx context.Context, store creds.Store, username, password string) error {
	if s.State != StateLoggedOut {
		return ErrInvalidState
	}

	normalized := creds.Normalize(username)
	user, err := store.FindByUsername(ctx, normalized)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if user == nil || user.Password != password {
		return ErrInvalidCredentials
	}
	if user.Status == creds.StatusExpired {
		return ErrAccountExpired
	}

	progress := make(Progress, len(s.Catalog))
	for _, quiz := range s.Catalog {
		progress[quiz.ID] = &ProgressEntry{
			Status: StatusNotStarted,
			Total:  len(quiz.Questions),
		}
	}

	s.ID = uuid.NewString()
	s.FullName = user.FullName
	s.Username = user.Username
	s.Progress = progress
	s.State = StateHub
	return nil
}

// StartQuiz (re)initializes the given quiz's progress entry and moves the
// cursor to its first question. Retaking a quiz discards prior answers for
// that quiz only; other quizzes are untouched.
func (s *Session) StartQuiz(quizID string) error {
	if s.State != StateHub {
		return ErrInvalidState
	}
	quiz := catalog.Find(s.Catalog, quizID)
	if quiz == nil {
		return fmt.Errorf("%w: %q", ErrQuizNotFound, quizID)
	}

	s.Progress[quizID] = &ProgressEntry{
		Status: StatusInProgress,
		Total:  len(quiz.Questions),
	}
	s.ActiveQuizID = quizID
	s.QuestionIndex = 0
	s.answered = false
	s.State = StateRunning
	return nil
}

// ActiveQuiz returns the quiz currently being taken, or nil.
func (s *Session) ActiveQuiz() *catalog.Quiz {
	if s.ActiveQuizID == "" {
		return nil
	}
	return catalog.Find(s.Catalog, s.ActiveQuizID)
}

// CurrentQuestion returns the question under the cursor, or nil when no
// quiz is running.
func (s *Session) CurrentQuestion() *catalog.Question {
	quiz := s.ActiveQuiz()
	if quiz == nil || s.State != StateRunning {
		return nil
	}
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(quiz.Questions) {
		return nil
	}
	return &quiz.Questions[s.QuestionIndex]
}

// SubmitAnswer records the selected option against the current question.
// Comparison is exact string equality, no normalization. Returns whether
// the answer was correct. Recording does not advance the cursor.
func (s *Session) SubmitAnswer(selectedOption string) (bool, error) {
	if s.State != StateRunning {
		return false, ErrNotRunning
	}
	if s.answered {
		return false, ErrAlreadyAnswered
	}
	q := s.CurrentQuestion()
	if q == nil {
		return false, ErrNotRunning
	}

	correct := selectedOption == q.CorrectAnswer
	entry := s.Progress[s.ActiveQuizID]
	entry.UserAnswers = append(entry.UserAnswers, UserAnswer{
		QuestionID:   q.ID,
		IsCorrect:    correct,
		QuestionText: q.Question,
	})
	if correct {
		entry.Score++
	}
	s.answered = true
	return correct, nil
}

// Advance moves the cursor to the next question, or completes the quiz
// when the last question has been answered. Completion transitions to the
// transient StateFinished; CloseResults returns to the hub.
func (s *Session) Advance() error {
	if s.State != StateRunning {
		return ErrNotRunning
	}
	if !s.answered {
		return ErrAnswerRequired
	}

	quiz := s.ActiveQuiz()
	if s.QuestionIndex < len(quiz.Questions)-1 {
		s.QuestionIndex++
		s.answered = false
		return nil
	}

	s.Progress[s.ActiveQuizID].Status = StatusCompleted
	s.State = StateFinished
	return nil
}

// CloseResults leaves the transient quiz-finished state and returns to the
// hub.
func (s *Session) CloseResults() error {
	if s.State != StateFinished {
		return ErrInvalidState
	}
	s.ActiveQuizID = ""
	s.QuestionIndex = 0
	s.answered = false
	s.State = StateHub
	return nil
}

// AllQuizzesCompleted reports whether every catalog quiz has been
// completed. Gates report generation from the hub.
func (s *Session) AllQuizzesCompleted() bool {
	if len(s.Progress) == 0 {
		return false
	}
	for _, quiz := range s.Catalog {
		entry := s.Progress[quiz.ID]
		if entry == nil || entry.Status != StatusCompleted {
			return false
		}
	}
	return true
}

// BeginReport transitions from the hub to the report state. Fails with
// ErrQuizzesIncomplete unless every quiz is completed.
func (s *Session) BeginReport() error {
	if s.State != StateHub {
		return ErrInvalidState
	}
	if !s.AllQuizzesCompleted() {
		return ErrQuizzesIncomplete
	}
	s.State = StateReport
	return nil
}

// MarkSubmitted records that the report was submitted. Only logout remains.
func (s *Session) MarkSubmitted() error {
	if s.State != StateReport {
		return ErrInvalidState
	}
	s.State = StateSubmitted
	return nil
}

// Logout discards all in-memory session state unconditionally. Persisted
// reports are untouched.
func (s *Session) Logout() {
	s.ID = ""
	s.FullName = ""
	s.Username = ""
	s.Progress = nil
	s.ActiveQuizID = ""
	s.QuestionIndex = 0
	s.answered = false
	s.State = StateLoggedOut
}
