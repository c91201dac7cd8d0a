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
	registerFieldName = iota
	registerFieldEmail
	registerFieldPassword
	registerFieldConfirm
	numRegisterFields
)

// registerResultMsg carries the outcome of a registration round trip.
type registerResultMsg struct {
	user *domain.User
	err  error
}

type registerModel struct {
	client *client.Client
	loc    *i18n.Localizer
	store  *session.Store

	inputs     [numRegisterFields]textinput.Model
	focus      int
	submitting bool
	errMsg     string

	width  int
	height int
}

func newRegisterModel(c *client.Client, loc *i18n.Localizer, store *session.Store) registerModel {
	m := registerModel{client: c, loc: loc, store: store}

	placeholders := [numRegisterFields]string{
		loc.T("register.name"),
		loc.T("register.email"),
		loc.T("register.password"),
		loc.T("register.confirmPassword"),
	}
	for i := 0; i < numRegisterFields; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 254
		ti.Width = 40
		if i == registerFieldPassword || i == registerFieldConfirm {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
			ti.CharLimit = 128
		}
		m.inputs[i] = ti
	}
	m.inputs[registerFieldName].Focus()

	return m
}

func (m registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = m.failureText(msg.err)
			return m, nil
		}
		if err := m.store.Save(msg.user); err != nil {
			m.errMsg = m.loc.T("register.genericError")
			return m, nil
		}
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
			m.setFocus((m.focus + 1) % numRegisterFields)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + numRegisterFields) % numRegisterFields)
			return m, nil
		case "enter":
			return m.submit()
		case "esc":
			return m, navigateCmd(viewHome)
		case "ctrl+l":
			return m, navigateCmd(viewLogin)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// submit checks the confirm-password field locally first; a mismatch never
// reaches the network.
func (m registerModel) submit() (registerModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	name := strings.TrimSpace(m.inputs[registerFieldName].Value())
	email := strings.TrimSpace(m.inputs[registerFieldEmail].Value())
	password := m.inputs[registerFieldPassword].Value()
	confirm := m.inputs[registerFieldConfirm].Value()
	if name == "" || email == "" || password == "" {
		return m, nil
	}
	if password != confirm {
		m.errMsg = m.loc.T("register.passwordMismatch")
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	c := m.client
	return m, func() tea.Msg {
		user, err := c.Register(context.Background(), client.Registration{
			Name:     name,
			Email:    email,
			Password: password,
		})
		return registerResultMsg{user: user, err: err}
	}
}

func (m registerModel) failureText(err error) string {
	if denied, ok := client.Denied(err); ok && denied.Message != "" {
		return denied.Message
	}
	return m.loc.T("register.genericError")
}

func (m registerModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("register.title")), m.width, rtl) + "\n\n")

	if m.errMsg != "" {
		b.WriteString(alignLine(errorStyle.Render(m.errMsg), m.width, rtl) + "\n\n")
	}

	labels := [numRegisterFields]string{
		m.loc.T("register.name"),
		m.loc.T("register.email"),
		m.loc.T("register.password"),
		m.loc.T("register.confirmPassword"),
	}
	for i := 0; i < numRegisterFields; i++ {
		style := labelStyle
		if i == m.focus {
			style = selectedStyle
		}
		b.WriteString(" " + style.Render(labels[i]) + "\n")
		b.WriteString(" " + m.inputs[i].View() + "\n\n")
	}

	if m.submitting {
		b.WriteString(" " + dimStyle.Render(m.loc.T("register.creating")) + "\n")
	} else {
		b.WriteString(" " + chipStyle.Render(m.loc.T("register.submit")) + "\n")
	}

	b.WriteString("\n " + dimStyle.Render(m.loc.T("register.haveAccount")) + " " +
		accentStyle.Render(m.loc.T("register.loginLink")) + dimStyle.Render(" (ctrl+l)") + "\n")

	return b.String()
}

func (m registerModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " +
		helpEntry("ctrl+l", "login") + "  " + helpEntry("esc", "back")
}
