package tui

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/drillquiz/drillquiz/internal/creds"
	"github.com/drillquiz/drillquiz/internal/session"
	"github.com/drillquiz/drillquiz/internal/ui/components"
	"github.com/drillquiz/drillquiz/internal/ui/theme"
)

const (
	fieldUsername = iota
	fieldPassword
)

// loginView collects credentials and drives the login transition.
type loginView struct {
	username components.TextInput
	password components.TextInput
	focus    int
	errMsg   string
}

func newLoginView() loginView {
	v := loginView{
		username: components.NewTextInput("Employee ID", "jdoe99", 64),
		password: components.NewPasswordInput("Password", 64),
	}
	v.username.Focus()
	return v
}

func (v loginView) Init() tea.Cmd {
	return v.username.Init()
}

func (v loginView) Update(msg tea.Msg, sess *session.Session, users creds.Store) (loginView, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "down", "up":
			if v.focus == fieldUsername {
				v.focus = fieldPassword
				v.username.Blur()
				return v, v.password.Focus()
			}
			v.focus = fieldUsername
			v.password.Blur()
			return v, v.username.Focus()

		case "enter":
			err := sess.Login(context.Background(), users, v.username.Value(), v.password.Value())
			switch {
			case err == nil:
				v.errMsg = ""
			case errors.Is(err, session.ErrInvalidCredentials),
				errors.Is(err, session.ErrAccountExpired):
				v.errMsg = err.Error()
			default:
				v.errMsg = "login failed, please try again"
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	if v.focus == fieldUsername {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v loginView) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Mandatory Training") + "\n")
	b.WriteString(theme.Subtitle.Render("Sign in with your employee account") + "\n\n")
	b.WriteString(v.username.View() + "\n\n")
	b.WriteString(v.password.View() + "\n")

	if v.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(v.errMsg) + "\n")
	}

	card := theme.Card.Width(48).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
