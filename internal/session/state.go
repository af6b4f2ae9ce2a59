package session

// State identifies where the session is in the training flow.
type State int

const (
	StateLoggedOut State = iota // No authenticated user
	StateHub                    // Quiz hub: pick a quiz or generate the report
	StateRunning                // Answering questions in a quiz
	StateFinished               // Transient: a quiz just completed, results shown
	StateReport                 // All quizzes done, report ready to submit
	StateSubmitted              // Report submitted, only logout remains
)

// Status is a quiz's progress status within the session.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// UserAnswer records one answered question. The question text is
// denormalized so reports stay meaningful if catalog content changes later.
type UserAnswer struct {
	QuestionID   int    `json:"questionId"`
	IsCorrect    bool   `json:"isCorrect"`
	QuestionText string `json:"questionText"`
}

// ProgressEntry is the per-quiz attempt record. Total is fixed at the
// moment the quiz is started and never changes afterward.
type ProgressEntry struct {
	Status      Status       `json:"status"`
	Score       int          `json:"score"`
	Total       int          `json:"total"`
	UserAnswers []UserAnswer `json:"userAnswers"`
}

// Progress maps quiz id to its progress entry. One entry per catalog quiz.
type Progress map[string]*ProgressEntry

// Clone returns a deep copy of the progress map, used to freeze a report
// snapshot at submission time.
func (p Progress) Clone() Progress {
	if p == nil {
		return nil
	}
	out := make(Progress, len(p))
	for id, entry := range p {
		if entry == nil {
			continue
		}
		copied := *entry
		copied.UserAnswers = make([]UserAnswer, len(entry.UserAnswers))
		copy(copied.UserAnswers, entry.UserAnswers)
		out[id] = &copied
	}
	return out
}
