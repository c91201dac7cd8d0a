package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/internal/session"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	numLoginFields
)

// loginResultMsg carries the outcome of a login round trip.
type loginResultMsg struct {
	user *domain.User
	err  error
}

type loginModel struct {
	client *client.Client
	loc    *i18n.Localizer
	store  *session.Store

	inputs     [numLoginFields]textinput.Model
	focus      int
	submitting bool
	errMsg     string

	width  int
	height int
}

func newLoginModel(c *client.Client, loc *i18n.Localizer, store *session.Store) loginModel {
	m := loginModel{client: c, loc: loc, store: store}

	email := textinput.New()
	email.Placeholder = loc.T("login.email")
	email.CharLimit = 254
	email.Width = 40
	email.Focus()
	m.inputs[loginFieldEmail] = email

	password := textinput.New()
	password.Placeholder = loc.T("login.password")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 40
	m.inputs[loginFieldPassword] = password

	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = m.failureText(msg.err)
			return m, nil
		}
		if err := m.store.Save(msg.user); err != nil {
			m.errMsg = m.loc.T("login.genericError")
			return m, nil
		}
		// Navigate to the root view, announcing the new session first.
		return m, tea.Batch(
			func() tea.Msg { return sessionChangedMsg{user: msg.user} },
			navigateCmd(viewHome),
		)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % numLoginFields)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + numLoginFields) % numLoginFields)
			return m, nil
		case "enter":
			return m.submit()
		case "esc":
			return m, navigateCmd(viewHome)
		case "ctrl+r":
			return m, navigateCmd(viewRegister)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// submit fires the login request. The submit control stays disabled until
// the in-flight request resolves; required fields keep it inert.
func (m loginModel) submit() (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
	password := m.inputs[loginFieldPassword].Value()
	if email == "" || password == "" {
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	c := m.client
	return m, func() tea.Msg {
		user, err := c.Login(context.Background(), client.Credentials{Email: email, Password: password})
		return loginResultMsg{user: user, err: err}
	}
}

// failureText maps a failed operation to the user-visible message: the
// server's own message for a denied envelope, the fixed localized fallback
// for everything else.
func (m loginModel) failureText(err error) string {
	if denied, ok := client.Denied(err); ok && denied.Message != "" {
		return denied.Message
	}
	return m.loc.T("login.genericError")
}

func (m loginModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("login.title")), m.width, rtl) + "\n\n")

	if m.errMsg != "" {
		b.WriteString(alignLine(errorStyle.Render(m.errMsg), m.width, rtl) + "\n\n")
	}

	labels := [numLoginFields]string{m.loc.T("login.email"), m.loc.T("login.password")}
	for i := 0; i < numLoginFields; i++ {
		style := labelStyle
		if i == m.focus {
			style = selectedStyle
		}
		b.WriteString(" " + style.Render(labels[i]) + "\n")
		b.WriteString(" " + m.inputs[i].View() + "\n\n")
	}

	if m.submitting {
		b.WriteString(" " + dimStyle.Render(m.loc.T("login.loggingIn")) + "\n")
	} else {
		b.WriteString(" " + chipStyle.Render(m.loc.T("login.submit")) + "\n")
	}

	b.WriteString("\n " + dimStyle.Render(m.loc.T("login.noAccount")) + " " +
		accentStyle.Render(m.loc.T("login.registerLink")) + dimStyle.Render(" (ctrl+r)") + "\n")

	return b.String()
}

func (m loginModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " +
		helpEntry("ctrl+r", "register") + "  " + helpEntry("esc", "back")
}
