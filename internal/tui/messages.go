package tui

import "github.com/drillquiz/drillquiz/internal/report"

// startQuizMsg asks the app model to start (or retake) a quiz.
type startQuizMsg struct {
	quizID string
}

// generateReportMsg asks the app model to enter the report screen.
type generateReportMsg struct{}

// logoutMsg ends the session and returns to the login screen.
type logoutMsg struct{}

// submittedMsg carries the result of an asynchronous report submission.
type submittedMsg struct {
	outcome report.Outcome
	err     error
}
