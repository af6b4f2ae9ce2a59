package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/drillquiz/drillquiz/internal/scoring"
	"github.com/drillquiz/drillquiz/internal/session"
	"github.com/drillquiz/drillquiz/internal/ui/components"
	"github.com/drillquiz/drillquiz/internal/ui/theme"
)

// quizView runs a single quiz question by question, then shows the results
// screen once the quiz completes.
type quizView struct {
	choice  components.MultiChoice
	correct bool
}

func newQuizView(sess *session.Session) quizView {
	return quizView{choice: questionChoice(sess)}
}

func questionChoice(sess *session.Session) components.MultiChoice {
	q := sess.CurrentQuestion()
	if q == nil {
		return components.MultiChoice{}
	}
	correctIndex := 0
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			correctIndex = i
			break
		}
	}
	return components.NewMultiChoice(q.Question, q.Options, correctIndex)
}

func (v quizView) Update(msg tea.Msg, sess *session.Session) (quizView, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return v, nil
	}

	if sess.State == session.StateFinished {
		if kmsg.String() == "enter" {
			_ = sess.CloseResults()
		}
		return v, nil
	}

	if v.choice.Submitted {
		if kmsg.String() == "enter" {
			if err := sess.Advance(); err != nil {
				return v, nil
			}
			if sess.State == session.StateRunning {
				v.choice = questionChoice(sess)
			}
		}
		return v, nil
	}

	wasSubmitted := v.choice.Submitted
	v.choice, _ = v.choice.Update(msg)
	if v.choice.Submitted && !wasSubmitted {
		correct, err := sess.SubmitAnswer(v.choice.Value())
		if err != nil {
			return v, nil
		}
		v.correct = correct
	}
	return v, nil
}

func (v quizView) View(sess *session.Session, width, height int) string {
	if sess.State == session.StateFinished {
		return v.resultsView(sess, width, height)
	}

	quiz := sess.ActiveQuiz()
	if quiz == nil {
		return ""
	}

	total := len(quiz.Questions)
	label := fmt.Sprintf("Question %d of %d", sess.QuestionIndex+1, total)
	percent := float64(sess.QuestionIndex) / float64(total)
	bar := components.NewProgressBar(label, percent, false, 60)

	var b strings.Builder
	b.WriteString(theme.Title.Render(quiz.Name) + "\n\n")
	b.WriteString(bar.View() + "\n\n")
	b.WriteString(v.choice.View())

	if v.choice.Submitted {
		b.WriteString("\n")
		if v.correct {
			b.WriteString(theme.Correct.Render("Correct!") + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("Incorrect.") + "\n")
		}
		b.WriteString(theme.Hint.Render("press enter to continue") + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (v quizView) resultsView(sess *session.Session, width, height int) string {
	quiz := sess.ActiveQuiz()
	if quiz == nil {
		return ""
	}
	outcome := scoring.Evaluate(*quiz, sess.Progress[quiz.ID])

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz Complete") + "\n\n")
	b.WriteString(fmt.Sprintf("%s\n", quiz.Name))
	b.WriteString(fmt.Sprintf("Score: %d/%d (%d%%)\n\n", outcome.Score, outcome.Total, outcome.Percentage))

	if outcome.Passed {
		b.WriteString(theme.Pass.Render("PASS") + "\n")
	} else {
		b.WriteString(theme.Fail.Render("FAIL") + "\n")
		if len(outcome.Weaknesses) > 0 {
			b.WriteString("\nAreas of weakness:\n")
			for _, w := range outcome.Weaknesses {
				b.WriteString("- " + w + "\n")
			}
		}
	}

	b.WriteString("\n" + theme.Hint.Render("press enter to return to the hub"))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
