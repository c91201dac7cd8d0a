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

// profileFocus identifies which part of the form has the cursor.
type profileFocus int

const (
	focusName profileFocus = iota
	focusNewPref
	focusPrefList
)

// profileRefreshedMsg carries the background profile re-fetch result.
type profileRefreshedMsg struct {
	user *domain.User
	err  error
}

// profileSavedMsg carries the outcome of a save round trip.
type profileSavedMsg struct {
	user *domain.User
	err  error
}

type profileModel struct {
	client *client.Client
	loc    *i18n.Localizer
	store  *session.Store

	// user is the session record the page mounted with; nil means the
	// terminal "not logged in" view.
	user *domain.User

	nameInput  textinput.Model
	prefInput  textinput.Model
	prefs      []string
	focus      profileFocus
	prefCursor int

	// inFlight serializes the background refresh and user-initiated saves:
	// only one profile operation may be outstanding at a time.
	inFlight bool
	// refreshing distinguishes the mount refresh from a save for display.
	refreshing bool
	// dirty is set once the user edits anything; a refresh that lands on a
	// dirty form updates the persisted record but leaves the fields alone.
	dirty bool

	errMsg    string
	okMsg     string
	statusMsg string

	width  int
	height int
}

func newProfileModel(c *client.Client, loc *i18n.Localizer, store *session.Store) profileModel {
	m := profileModel{client: c, loc: loc, store: store}

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = loc.T("profile.name")
	m.nameInput.CharLimit = 128
	m.nameInput.Width = 40

	m.prefInput = textinput.New()
	m.prefInput.Placeholder = loc.T("profile.newPreference")
	m.prefInput.CharLimit = 64
	m.prefInput.Width = 40

	user, ok := store.Load()
	if !ok {
		return m
	}
	m.user = user
	m.nameInput.SetValue(user.Name)
	m.prefs = append([]string(nil), user.Preferences...)
	m.nameInput.Focus()
	// The mount refresh counts as the first in-flight operation; saves are
	// rejected until it resolves.
	m.inFlight = true
	m.refreshing = true

	return m
}

// Init fires the background profile refresh. A page without a session is
// terminal: it issues no network calls at all.
func (m profileModel) Init() tea.Cmd {
	if m.user == nil {
		return nil
	}
	return tea.Batch(textinput.Blink, m.refresh(m.user.Email))
}

func (m profileModel) refresh(email string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		user, err := c.GetProfile(context.Background(), email)
		return profileRefreshedMsg{user: user, err: err}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileRefreshedMsg:
		m.inFlight = false
		m.refreshing = false
		if msg.err != nil {
			// Background refresh failures are diagnostic-only; the page
			// keeps showing the stored record.
			return m, nil
		}
		if err := m.store.Save(msg.user); err != nil {
			return m, nil
		}
		m.user = msg.user
		if !m.dirty {
			m.nameInput.SetValue(msg.user.Name)
			m.prefs = append([]string(nil), msg.user.Preferences...)
			if m.prefCursor >= len(m.prefs) {
				m.prefCursor = 0
			}
		}
		return m, func() tea.Msg { return sessionChangedMsg{user: msg.user} }

	case profileSavedMsg:
		m.inFlight = false
		if msg.err != nil {
			// Edits stay in place for a manual retry.
			m.errMsg = m.failureText(msg.err)
			return m, nil
		}
		if err := m.store.Save(msg.user); err != nil {
			m.errMsg = m.loc.T("profile.genericError")
			return m, nil
		}
		m.user = msg.user
		m.nameInput.SetValue(msg.user.Name)
		m.prefs = append([]string(nil), msg.user.Preferences...)
		if m.prefCursor >= len(m.prefs) {
			m.prefCursor = 0
		}
		m.dirty = false
		m.okMsg = m.loc.T("profile.updateSuccess")
		return m, func() tea.Msg { return sessionChangedMsg{user: msg.user} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.user == nil {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m profileModel) updateKeys(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.save()
	case "tab":
		m.setFocus(m.nextFocus(1))
		return m, nil
	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	case "esc":
		return m, navigateCmd(viewHome)
	case "enter":
		if m.focus == focusNewPref {
			m.addPreference()
			return m, nil
		}
	}

	if m.focus == focusPrefList {
		switch msg.String() {
		case "j", "down":
			if m.prefCursor < len(m.prefs)-1 {
				m.prefCursor++
			}
		case "k", "up":
			if m.prefCursor > 0 {
				m.prefCursor--
			}
		case "x", "backspace", "delete":
			m.removePreference()
		}
		return m, nil
	}

	m.noteEdit(msg)
	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.prefInput, cmd = m.prefInput.Update(msg)
	}
	return m, cmd
}

// noteEdit marks the form dirty for keys that change field content.
func (m *profileModel) noteEdit(msg tea.KeyMsg) {
	if m.focus != focusName {
		return
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
		m.dirty = true
		m.okMsg = ""
	}
}

func (m *profileModel) setFocus(f profileFocus) {
	m.nameInput.Blur()
	m.prefInput.Blur()
	m.focus = f
	switch f {
	case focusName:
		m.nameInput.Focus()
	case focusNewPref:
		m.prefInput.Focus()
	}
}

func (m profileModel) nextFocus(delta int) profileFocus {
	zones := 3
	if len(m.prefs) == 0 {
		zones = 2 // skip the empty list
	}
	return profileFocus((int(m.focus) + delta + zones) % zones)
}

// addPreference trims and dedupes before insert; blank input is a no-op.
func (m *profileModel) addPreference() {
	v := strings.TrimSpace(m.prefInput.Value())
	if v == "" {
		m.prefInput.SetValue("")
		return
	}
	for _, p := range m.prefs {
		if p == v {
			m.prefInput.SetValue("")
			return
		}
	}
	m.prefs = append(m.prefs, v)
	m.prefInput.SetValue("")
	m.dirty = true
	m.okMsg = ""
}

func (m *profileModel) removePreference() {
	if m.prefCursor >= len(m.prefs) {
		return
	}
	m.prefs = append(m.prefs[:m.prefCursor], m.prefs[m.prefCursor+1:]...)
	if m.prefCursor >= len(m.prefs) && m.prefCursor > 0 {
		m.prefCursor--
	}
	m.dirty = true
	m.okMsg = ""
}

// save submits the whole working state. A save while the refresh or a
// previous save is still outstanding is rejected, not queued.
func (m profileModel) save() (profileModel, tea.Cmd) {
	if m.user == nil {
		return m, nil
	}
	if m.inFlight {
		m.statusMsg = m.loc.T("profile.busy")
		return m, nil
	}

	m.inFlight = true
	m.errMsg = ""
	m.okMsg = ""
	m.statusMsg = ""

	update := client.ProfileUpdate{
		Email:       m.user.Email,
		Name:        strings.TrimSpace(m.nameInput.Value()),
		Preferences: append([]string(nil), m.prefs...),
	}
	c := m.client
	return m, func() tea.Msg {
		user, err := c.UpdateProfile(context.Background(), update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m profileModel) failureText(err error) string {
	if denied, ok := client.Denied(err); ok && denied.Message != "" {
		return denied.Message
	}
	return m.loc.T("profile.genericError")
}

// editing reports whether a text input currently owns the keyboard.
func (m profileModel) editing() bool {
	return m.user != nil && m.focus != focusPrefList
}

func (m profileModel) View() string {
	rtl := m.loc.RTL()

	if m.user == nil {
		return "\n " + alignLine(dimStyle.Render(m.loc.T("profile.notLoggedIn")), m.width, rtl) + "\n"
	}

	var b strings.Builder
	b.WriteString(alignLine(titleStyle.Render(m.loc.T("profile.title")), m.width, rtl) + "\n")
	b.WriteString(alignLine(metaStyle.Render(m.user.Email), m.width, rtl) + "\n\n")

	if m.errMsg != "" {
		b.WriteString(alignLine(errorStyle.Render(m.errMsg), m.width, rtl) + "\n\n")
	}
	if m.okMsg != "" {
		b.WriteString(alignLine(successStyle.Render(m.okMsg), m.width, rtl) + "\n\n")
	}
	if m.statusMsg != "" {
		b.WriteString(alignLine(dimStyle.Render(m.statusMsg), m.width, rtl) + "\n\n")
	}

	nameLabel := labelStyle
	if m.focus == focusName {
		nameLabel = selectedStyle
	}
	b.WriteString(" " + nameLabel.Render(m.loc.T("profile.name")) + "\n")
	b.WriteString(" " + m.nameInput.View() + "\n\n")

	b.WriteString(" " + labelStyle.Render(m.loc.T("profile.preferences")) + "  " +
		metaStyle.Render(m.loc.T("profile.preferencesHelp")) + "\n")
	if len(m.prefs) == 0 {
		b.WriteString(" " + dimStyle.Render(m.loc.T("profile.noPreferences")) + "\n")
	}
	for i, p := range m.prefs {
		cursor := " "
		style := dimStyle
		if m.focus == focusPrefList && i == m.prefCursor {
			cursor = ">"
			style = selectedStyle
		}
		b.WriteString(" " + cursor + " " + style.Render(p) + "\n")
	}
	b.WriteString("\n")

	prefLabel := labelStyle
	if m.focus == focusNewPref {
		prefLabel = selectedStyle
	}
	b.WriteString(" " + prefLabel.Render(m.loc.T("profile.newPreference")) + "  " +
		metaStyle.Render("("+m.loc.T("profile.add")+": enter)") + "\n")
	b.WriteString(" " + m.prefInput.View() + "\n\n")

	if m.inFlight && m.refreshing {
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.loading")) + "\n")
	} else if m.inFlight {
		b.WriteString(" " + dimStyle.Render(m.loc.T("profile.saving")) + "\n")
	} else {
		b.WriteString(" " + chipStyle.Render(m.loc.T("profile.saveChanges")) + dimStyle.Render(" (ctrl+s)") + "\n")
	}

	return b.String()
}

func (m profileModel) helpKeys() string {
	if m.user == nil {
		return helpEntry("1-9", "nav")
	}
	if m.focus == focusPrefList {
		return helpEntry("j/k", "nav") + "  " + helpEntry("x", "remove") + "  " +
			helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save")
	}
	return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "back")
}
