// Package scoring computes pass/fail verdicts and weakness lists from quiz
// progress. Two overall policies exist and are both exposed by name: the
// pooled result (all scores summed against one threshold) and the all-pass
// result (every quiz must pass individually).
package scoring

import (
	"math"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/session"
)

// PassingPercentage is the pass threshold for a quiz and for the pooled
// overall result.
const PassingPercentage = 70

// WeaknessNotTaken is the synthetic weakness reported for a quiz with no
// recorded progress.
const WeaknessNotTaken = "Quiz not taken"

// Percentage returns round(score/total*100). A zero total yields 0 so an
// empty quiz can never pass.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Passed reports whether a score passes the per-quiz threshold.
func Passed(score, total int) bool {
	return total > 0 && Percentage(score, total) >= PassingPercentage
}

// QuizOutcome is the evaluated result of one quiz for reporting.
type QuizOutcome struct {
	QuizID     string
	Name       string
	Score      int
	Total      int
	Percentage int
	Passed     bool
	// Weaknesses is populated only for a failed quiz.
	Weaknesses []string
}

// Evaluate computes the outcome of one quiz from its progress entry. A nil
// entry means the quiz was never taken.
func Evaluate(quiz catalog.Quiz, entry *session.ProgressEntry) QuizOutcome {
	if entry == nil {
		return QuizOutcome{
			QuizID:     quiz.ID,
			Name:       quiz.Name,
			Weaknesses: []string{WeaknessNotTaken},
		}
	}

	out := QuizOutcome{
		QuizID:     quiz.ID,
		Name:       quiz.Name,
		Score:      entry.Score,
		Total:      entry.Total,
		Percentage: Percentage(entry.Score, entry.Total),
		Passed:     Passed(entry.Score, entry.Total),
	}
	if !out.Passed {
		out.Weaknesses = Weaknesses(entry)
	}
	return out
}

// Weaknesses collects the question texts answered incorrectly,
// deduplicated with first-seen order preserved.
func Weaknesses(entry *session.ProgressEntry) []string {
	if entry == nil {
		return []string{WeaknessNotTaken}
	}
	seen := make(map[string]bool)
	var out []string
	for _, a := range entry.UserAnswers {
		if a.IsCorrect || seen[a.QuestionText] {
			continue
		}
		seen[a.QuestionText] = true
		out = append(out, a.QuestionText)
	}
	return out
}

// OverallPooled sums every quiz's score and total and applies the
// threshold once. False unless every catalog quiz is completed: an
// incomplete quiz counts as failing, never as passing by omission.
func OverallPooled(quizzes []catalog.Quiz, progress session.Progress) bool {
	if !allCompleted(quizzes, progress) {
		return false
	}
	var score, total int
	for _, quiz := range quizzes {
		entry := progress[quiz.ID]
		score += entry.Score
		total += entry.Total
	}
	return Passed(score, total)
}

// OverallAllPass requires every catalog quiz to be completed and to pass
// individually.
func OverallAllPass(quizzes []catalog.Quiz, progress session.Progress) bool {
	if !allCompleted(quizzes, progress) {
		return false
	}
	for _, quiz := range quizzes {
		entry := progress[quiz.ID]
		if !Passed(entry.Score, entry.Total) {
			return false
		}
	}
	return true
}

func allCompleted(quizzes []catalog.Quiz, progress session.Progress) bool {
	if len(quizzes) == 0 || len(progress) == 0 {
		return false
	}
	for _, quiz := range quizzes {
		entry := progress[quiz.ID]
		if entry == nil || entry.Status != session.StatusCompleted {
			return false
		}
	}
	return true
}
