package session

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountExpired means the user already completed their training.
	// Terminal for the account without admin intervention.
	ErrAccountExpired = errors.New("account expired: training already completed")

	// ErrQuizNotFound means a quiz id not present in the catalog was
	// requested. This is a data error, not a user-recoverable one.
	ErrQuizNotFound = errors.New("quiz not found in catalog")

	// ErrNotRunning means an operation required an active quiz.
	ErrNotRunning = errors.New("no quiz is running")

	// ErrAlreadyAnswered means the current question already has an answer
	// recorded in this attempt.
	ErrAlreadyAnswered = errors.New("answer already recorded for this question")

	// ErrAnswerRequired means Advance was called before an answer was
	// recorded for the current question.
	ErrAnswerRequired = errors.New("no answer recorded for this question")

	// ErrQuizzesIncomplete means report generation was requested before
	// every catalog quiz was completed.
	ErrQuizzesIncomplete = errors.New("not all quizzes are completed")

	// ErrInvalidState means the operation is not valid in the session's
	// current state.
	ErrInvalidState = errors.New("operation not valid in current state")
)
