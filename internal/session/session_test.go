package session

import (
	"context"
	"errors"
	"testing"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/creds"
)

// memStore is an in-memory creds.Store for session tests.
type memStore struct {
	users map[string]*creds.User
}

func newMemStore(users ...*creds.User) *memStore {
	m := &memStore{users: make(map[string]*creds.User)}
	for _, u := range users {
		m.users[creds.Normalize(u.Username)] = u
	}
	return m
}

func (m *memStore) FindByUsername(ctx context.Context, username string) (*creds.User, error) {
	return m.users[creds.Normalize(username)], nil
}

func (m *memStore) SetStatus(ctx context.Context, username, status string) error {
	u := m.users[creds.Normalize(username)]
	if u == nil {
		return errors.New("no such user")
	}
	u.Status = status
	return nil
}

func (m *memStore) Create(ctx context.Context, u *creds.User) error {
	m.users[creds.Normalize(u.Username)] = u
	return nil
}

func (m *memStore) List(ctx context.Context) ([]creds.User, error) {
	var out []creds.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func testCatalog() []catalog.Quiz {
	return []catalog.Quiz{
		{
			ID:   "alpha",
			Name: "Alpha",
			Questions: []catalog.Question{
				{ID: 1, Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: "a"},
				{ID: 2, Question: "q2", Options: []string{"c", "d"}, CorrectAnswer: "d"},
			},
		},
		{
			ID:   "beta",
			Name: "Beta",
			Questions: []catalog.Question{
				{ID: 3, Question: "q3", Options: []string{"e", "f"}, CorrectAnswer: "e"},
			},
		},
	}
}

func activeUser() *creds.User {
	return &creds.User{
		FullName: "Jane Doe",
		Username: "jdoe99",
		Password: "hunter2",
		Status:   creds.StatusActive,
	}
}

func loggedIn(t *testing.T) *Session {
	t.Helper()
	s := New(testCatalog())
	store := newMemStore(activeUser())
	if err := s.Login(context.Background(), store, "jdoe99", "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}

// completeQuiz answers every question in the given quiz correctly.
func completeQuiz(t *testing.T, s *Session, quizID string) {
	t.Helper()
	if err := s.StartQuiz(quizID); err != nil {
		t.Fatalf("start %s: %v", quizID, err)
	}
	quiz := catalog.Find(s.Catalog, quizID)
	for range quiz.Questions {
		q := s.CurrentQuestion()
		if _, err := s.SubmitAnswer(q.CorrectAnswer); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if s.State != StateFinished {
		t.Fatalf("expected finished state after last question, got %v", s.State)
	}
	if err := s.CloseResults(); err != nil {
		t.Fatalf("close results: %v", err)
	}
}

func TestLoginNormalizesUsername(t *testing.T) {
	s := New(testCatalog())
	store := newMemStore(activeUser())

	if err := s.Login(context.Background(), store, "  JDoe99  ", "hunter2"); err != nil {
		t.Fatalf("login with unnormalized username: %v", err)
	}
	if s.Username != "jdoe99" {
		t.Errorf("session username = %q, want normalized %q", s.Username, "jdoe99")
	}
	if s.State != StateHub {
		t.Errorf("state = %v, want hub", s.State)
	}
	if s.ID == "" {
		t.Error("expected a session id after login")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newMemStore(activeUser())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "hunter2"},
		{"wrong password", "jdoe99", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testCatalog())
			err := s.Login(context.Background(), store, tt.username, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
			if s.State != StateLoggedOut {
				t.Errorf("state = %v, want logged out", s.State)
			}
		})
	}
}

func TestLoginExpiredAccount(t *testing.T) {
	u := activeUser()
	u.Status = creds.StatusExpired
	s := New(testCatalog())

	err := s.Login(context.Background(), newMemStore(u), "jdoe99", "hunter2")
	if !errors.Is(err, ErrAccountExpired) {
		t.Errorf("err = %v, want ErrAccountExpired", err)
	}
}

func TestLoginInitializesProgress(t *testing.T) {
	s := loggedIn(t)

	if len(s.Progress) != 2 {
		t.Fatalf("progress entries = %d, want 2", len(s.Progress))
	}
	for _, quiz := range s.Catalog {
		entry := s.Progress[quiz.ID]
		if entry == nil {
			t.Fatalf("no progress entry for %q", quiz.ID)
		}
		if entry.Status != StatusNotStarted {
			t.Errorf("%q status = %q, want not started", quiz.ID, entry.Status)
		}
		if entry.Total != len(quiz.Questions) {
			t.Errorf("%q total = %d, want %d", quiz.ID, entry.Total, len(quiz.Questions))
		}
	}
}

func TestSubmitAnswerExactMatch(t *testing.T) {
	s := loggedIn(t)
	if err := s.StartQuiz("alpha"); err != nil {
		t.Fatalf("start: %v", err)
	}

	correct, err := s.SubmitAnswer("a")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !correct {
		t.Error("expected correct answer")
	}

	entry := s.Progress["alpha"]
	if entry.Score != 1 {
		t.Errorf("score = %d, want 1", entry.Score)
	}
	if len(entry.UserAnswers) != 1 {
		t.Fatalf("answers = %d, want 1", len(entry.UserAnswers))
	}
	if entry.UserAnswers[0].QuestionText != "q1" {
		t.Errorf("question text = %q, want q1", entry.UserAnswers[0].QuestionText)
	}
}

func TestSubmitAnswerTwiceRejected(t *testing.T) {
	s := loggedIn(t)
	if err := s.StartQuiz("alpha"); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := s.SubmitAnswer("a"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := s.SubmitAnswer("b"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("second submit err = %v, want ErrAlreadyAnswered", err)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := loggedIn(t)
	if err := s.StartQuiz("alpha"); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.Advance(); !errors.Is(err, ErrAnswerRequired) {
		t.Errorf("advance err = %v, want ErrAnswerRequired", err)
	}
}

func TestCompletedQuizAnswerCountMatchesTotal(t *testing.T) {
	s := loggedIn(t)
	completeQuiz(t, s, "alpha")

	entry := s.Progress["alpha"]
	if entry.Status != StatusCompleted {
		t.Fatalf("status = %q, want completed", entry.Status)
	}
	if len(entry.UserAnswers) != entry.Total {
		t.Errorf("answers = %d, total = %d; must match on completion",
			len(entry.UserAnswers), entry.Total)
	}
}

func TestRetakeResetsOnlyThatQuiz(t *testing.T) {
	s := loggedIn(t)
	completeQuiz(t, s, "alpha")
	completeQuiz(t, s, "beta")

	if err := s.StartQuiz("alpha"); err != nil {
		t.Fatalf("retake: %v", err)
	}

	alpha := s.Progress["alpha"]
	if alpha.Status != StatusInProgress || alpha.Score != 0 || len(alpha.UserAnswers) != 0 {
		t.Errorf("retaken quiz not reset: %+v", alpha)
	}
	beta := s.Progress["beta"]
	if beta.Status != StatusCompleted || beta.Score != 1 {
		t.Errorf("untouched quiz was modified: %+v", beta)
	}
}

func TestStartUnknownQuiz(t *testing.T) {
	s := loggedIn(t)
	if err := s.StartQuiz("gamma"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestBeginReportGated(t *testing.T) {
	s := loggedIn(t)

	if err := s.BeginReport(); !errors.Is(err, ErrQuizzesIncomplete) {
		t.Fatalf("err = %v, want ErrQuizzesIncomplete", err)
	}

	completeQuiz(t, s, "alpha")
	completeQuiz(t, s, "beta")

	if !s.AllQuizzesCompleted() {
		t.Fatal("expected all quizzes completed")
	}
	if err := s.BeginReport(); err != nil {
		t.Fatalf("begin report: %v", err)
	}
	if s.State != StateReport {
		t.Errorf("state = %v, want report", s.State)
	}
	if err := s.MarkSubmitted(); err != nil {
		t.Fatalf("mark submitted: %v", err)
	}
	if s.State != StateSubmitted {
		t.Errorf("state = %v, want submitted", s.State)
	}
}

func TestInvalidStateTransitions(t *testing.T) {
	s := New(testCatalog())

	if err := s.StartQuiz("alpha"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("StartQuiz while logged out: err = %v, want ErrInvalidState", err)
	}
	if _, err := s.SubmitAnswer("a"); !errors.Is(err, ErrNotRunning) {
		t.Errorf("SubmitAnswer while logged out: err = %v, want ErrNotRunning", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Advance while logged out: err = %v, want ErrNotRunning", err)
	}
	if err := s.BeginReport(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("BeginReport while logged out: err = %v, want ErrInvalidState", err)
	}
}

func TestLogoutClearsState(t *testing.T) {
	s := loggedIn(t)
	completeQuiz(t, s, "alpha")

	s.Logout()

	if s.State != StateLoggedOut {
		t.Errorf("state = %v, want logged out", s.State)
	}
	if s.Username != "" || s.FullName != "" || s.ID != "" {
		t.Error("identity not cleared on logout")
	}
	if s.Progress != nil {
		t.Error("progress not cleared on logout")
	}
}

func TestProgressClone(t *testing.T) {
	s := loggedIn(t)
	completeQuiz(t, s, "alpha")

	snapshot := s.Progress.Clone()

	// Mutating the live session must not leak into the snapshot.
	if err := s.StartQuiz("alpha"); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if snapshot["alpha"].Status != StatusCompleted {
		t.Error("clone shares state with the live progress map")
	}
	if len(snapshot["alpha"].UserAnswers) != 2 {
		t.Errorf("clone answers = %d, want 2", len(snapshot["alpha"].UserAnswers))
	}
}
