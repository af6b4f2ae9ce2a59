package tui

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/report"
	"github.com/drillquiz/drillquiz/internal/session"
	"github.com/drillquiz/drillquiz/internal/ui/theme"
)

// reportView previews the assembled report, submits it on confirmation,
// and shows the post-submission screen.
type reportView struct {
	rep       report.TrainingReport
	summary   string
	submitter *report.Submitter

	submitting bool
	outcome    report.Outcome
	errMsg     string
}

func newReportView(sess *session.Session, quizzes []catalog.Quiz, submitter *report.Submitter) reportView {
	rep := report.New(report.UserRef{
		FullName: sess.FullName,
		Username: sess.Username,
	}, quizzes, sess.Progress, time.Now())

	return reportView{
		rep:       rep,
		summary:   report.RenderSummary(rep, quizzes),
		submitter: submitter,
	}
}

func (v reportView) submitCmd() tea.Cmd {
	rep := v.rep
	submitter := v.submitter
	return func() tea.Msg {
		outcome, err := submitter.Submit(context.Background(), rep)
		return submittedMsg{outcome: outcome, err: err}
	}
}

func (v reportView) Update(msg tea.Msg, sess *session.Session) (reportView, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		v.submitting = false
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			return v, nil
		}
		v.outcome = msg.outcome
		_ = sess.MarkSubmitted()
		return v, nil

	case tea.KeyPressMsg:
		if msg.String() != "enter" {
			return v, nil
		}
		switch {
		case sess.State == session.StateSubmitted:
			return v, func() tea.Msg { return logoutMsg{} }
		case !v.submitting:
			v.submitting = true
			v.errMsg = ""
			return v, v.submitCmd()
		}
	}

	return v, nil
}

func (v reportView) View(sess *session.Session, width, height int) string {
	if sess.State == session.StateSubmitted {
		return v.submittedView(width, height)
	}

	var b strings.Builder
	b.WriteString(v.summary)

	switch {
	case v.errMsg != "":
		b.WriteString(theme.Incorrect.Render(v.errMsg) + "\n")
		b.WriteString(theme.Hint.Render("press enter to retry"))
	case v.submitting:
		b.WriteString(theme.Hint.Render("submitting..."))
	default:
		b.WriteString(theme.Hint.Render("press enter to submit"))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (v reportView) submittedView(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Report Submitted") + "\n\n")
	b.WriteString("Your training report has been submitted to the administrator.\n")
	if v.outcome == report.OutcomeFellBack {
		b.WriteString(theme.Hint.Render("The report server was unreachable; the report was saved locally.") + "\n")
	}
	b.WriteString("\nYour account has been deactivated for this training cycle.\n")
	b.WriteString("\n" + theme.Hint.Render("press enter to log out"))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
