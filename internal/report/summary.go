package report

import (
	"fmt"
	"strings"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/scoring"
)

// RenderSummary produces the deterministic plain-text rendering of a
// report: a header with name, id, date, and overall result, then one block
// per catalog quiz with score, percentage, pass/fail, and weaknesses for
// failed quizzes.
func RenderSummary(r TrainingReport, quizzes []catalog.Quiz) string {
	date := r.SubmissionDate.Format("2006-01-02")

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Training Report — %s — %s\n\n", r.User.FullName, date)
	b.WriteString("Administrator,\n\n")
	fmt.Fprintf(&b, "Please find the training results for %s (Employee ID: %s) on %s:\n\n",
		r.User.FullName, r.User.Username, date)
	fmt.Fprintf(&b, "Report ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Overall result: %s\n\n", passFail(r.OverallResult))
	b.WriteString("--- DETAILED BREAKDOWN ---\n\n")

	for _, quiz := range quizzes {
		outcome := scoring.Evaluate(quiz, r.QuizProgress[quiz.ID])
		fmt.Fprintf(&b, "Quiz: %s\n", outcome.Name)
		fmt.Fprintf(&b, "Result: %s (%d/%d - %d%%)\n",
			passFail(outcome.Passed), outcome.Score, outcome.Total, outcome.Percentage)
		if !outcome.Passed && len(outcome.Weaknesses) > 0 {
			b.WriteString("Areas of Weakness:\n")
			for _, w := range outcome.Weaknesses {
				fmt.Fprintf(&b, "- %s\n", w)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func passFail(passed bool) string {
	if passed {
		return "Pass"
	}
	return "Fail"
}
