// Package tui implements the terminal interface for the training flow. A
// single root model switches between views based on the session state:
// login, quiz hub, running quiz, results, and report submission.
package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/drillquiz/drillquiz/internal/catalog"
	"github.com/drillquiz/drillquiz/internal/creds"
	"github.com/drillquiz/drillquiz/internal/report"
	"github.com/drillquiz/drillquiz/internal/session"
	"github.com/drillquiz/drillquiz/internal/ui/layout"
)

// Deps bundles everything the interface needs to run a training session.
type Deps struct {
	Catalog   []catalog.Quiz
	Users     creds.Store
	Submitter *report.Submitter
}

// Model is the root Bubble Tea model.
type Model struct {
	deps Deps
	sess *session.Session

	width  int
	height int

	login  loginView
	hub    hubView
	quiz   quizView
	report reportView
}

func newModel(deps Deps) Model {
	return Model{
		deps:  deps,
		sess:  session.New(deps.Catalog),
		login: newLoginView(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case startQuizMsg:
		if err := m.sess.StartQuiz(msg.quizID); err != nil {
			return m, nil
		}
		m.quiz = newQuizView(m.sess)
		return m, nil

	case generateReportMsg:
		if err := m.sess.BeginReport(); err != nil {
			return m, nil
		}
		m.report = newReportView(m.sess, m.deps.Catalog, m.deps.Submitter)
		return m, nil

	case logoutMsg:
		m.sess.Logout()
		m.login = newLoginView()
		return m, m.login.Init()
	}

	switch m.sess.State {
	case session.StateLoggedOut:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg, m.sess, m.deps.Users)
		if m.sess.State == session.StateHub {
			m.hub = newHubView(m.sess)
		}
		return m, cmd

	case session.StateHub:
		var cmd tea.Cmd
		m.hub, cmd = m.hub.Update(msg, m.sess)
		return m, cmd

	case session.StateRunning, session.StateFinished:
		var cmd tea.Cmd
		m.quiz, cmd = m.quiz.Update(msg, m.sess)
		if m.sess.State == session.StateHub {
			m.hub = newHubView(m.sess)
		}
		return m, cmd

	case session.StateReport, session.StateSubmitted:
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg, m.sess)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var title, content string
	var hints []layout.KeyHint

	switch m.sess.State {
	case session.StateLoggedOut:
		title = "Sign In"
		hints = []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Sign in"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StateHub:
		title = "Training Hub"
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StateRunning:
		title = "Quiz"
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer / Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StateFinished:
		title = "Results"
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Back to hub"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StateReport:
		title = "Training Report"
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StateSubmitted:
		title = "Report Submitted"
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Log out"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	user := ""
	if m.sess.FullName != "" {
		user = fmt.Sprintf("%s (%s)", m.sess.FullName, m.sess.Username)
	}

	header := layout.RenderHeader(title, user, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := layout.ContentHeight(m.height)

	switch m.sess.State {
	case session.StateLoggedOut:
		content = m.login.View(m.width, contentHeight)
	case session.StateHub:
		content = m.hub.View(m.width, contentHeight)
	case session.StateRunning, session.StateFinished:
		content = m.quiz.View(m.sess, m.width, contentHeight)
	case session.StateReport, session.StateSubmitted:
		content = m.report.View(m.sess, m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
