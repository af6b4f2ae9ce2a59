package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/drillquiz/drillquiz/internal/session"
	"github.com/drillquiz/drillquiz/internal/ui/components"
	"github.com/drillquiz/drillquiz/internal/ui/theme"
)

// hubView lists the catalog quizzes with their status and gates report
// generation until every quiz is completed.
type hubView struct {
	menu components.Menu
}

func newHubView(sess *session.Session) hubView {
	items := make([]components.MenuItem, 0, len(sess.Catalog)+2)

	for _, quiz := range sess.Catalog {
		entry := sess.Progress[quiz.ID]

		label := "Start: " + quiz.Name
		detail := "Not started"
		style := theme.PillNotStarted

		if entry != nil {
			switch entry.Status {
			case session.StatusCompleted:
				label = "Retake: " + quiz.Name
				detail = fmt.Sprintf("Completed %d/%d", entry.Score, entry.Total)
				style = theme.PillCompleted
			case session.StatusInProgress:
				label = "Start: " + quiz.Name
				detail = "In progress"
				style = theme.PillInProgress
			}
		}

		id := quiz.ID
		items = append(items, components.MenuItem{
			Label:       label,
			Detail:      detail,
			DetailStyle: style,
			Action: func() tea.Cmd {
				return func() tea.Msg { return startQuizMsg{quizID: id} }
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "Generate Report",
		Disabled: !sess.AllQuizzesCompleted(),
		Action: func() tea.Cmd {
			return func() tea.Msg { return generateReportMsg{} }
		},
	})
	items = append(items, components.MenuItem{
		Label: "Log Out",
		Action: func() tea.Cmd {
			return func() tea.Msg { return logoutMsg{} }
		},
	})

	return hubView{menu: components.NewMenu(items)}
}

func (v hubView) Update(msg tea.Msg, sess *session.Session) (hubView, tea.Cmd) {
	var cmd tea.Cmd
	v.menu, cmd = v.menu.Update(msg)
	return v, cmd
}

func (v hubView) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Training Hub") + "\n")
	b.WriteString(theme.Subtitle.Render("Complete every quiz to generate your report") + "\n\n")
	b.WriteString(v.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
