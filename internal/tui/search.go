package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

type searchResultsMsg struct {
	query    string
	products []domain.Product
	err      error
}

type searchModel struct {
	client *client.Client
	loc    *i18n.Localizer

	input        textinput.Model
	inputFocused bool
	searching    bool
	searched     bool
	results      []domain.Product
	cursor       int
	errMsg       string
	statusMsg    string

	width  int
	height int
}

func newSearchModel(c *client.Client, loc *i18n.Localizer) searchModel {
	input := textinput.New()
	input.Placeholder = loc.T("search.placeholder")
	input.CharLimit = 200
	input.Width = 50
	input.Focus()
	return searchModel{client: c, loc: loc, input: input, inputFocused: true}
}

func (m searchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchModel) search(query string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		products, err := c.Products().Search(context.Background(), query)
		return searchResultsMsg{query: query, products: products, err: err}
	}
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		m.searching = false
		m.searched = true
		if msg.err != nil {
			m.errMsg = m.loc.T("search.genericError")
			return m, nil
		}
		m.errMsg = ""
		m.results = msg.products
		m.cursor = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m searchModel) updateKeys(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	m.statusMsg = ""

	if m.inputFocused {
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.searching {
				return m, nil
			}
			m.searching = true
			return m, m.search(query)
		case "esc":
			if len(m.results) > 0 {
				m.inputFocused = false
				m.input.Blur()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		if m.cursor < len(m.results) {
			p := m.results[m.cursor]
			m.statusMsg = m.loc.T("products.added")
			return m, func() tea.Msg { return addToCartMsg{product: p} }
		}
	case "enter", "/":
		m.inputFocused = true
		return m, m.input.Focus()
	}
	return m, nil
}

func (m searchModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("search.title")), m.width, rtl) + "\n\n")
	b.WriteString(" " + m.input.View() + "\n\n")

	switch {
	case m.searching:
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.loading")) + "\n")
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	case m.searched && len(m.results) == 0:
		b.WriteString(" " + dimStyle.Render(m.loc.T("search.noResults")) + "\n")
	default:
		for i, p := range m.results {
			cursor := " "
			style := dimStyle
			if !m.inputFocused && i == m.cursor {
				cursor = ">"
				style = selectedStyle
			}
			b.WriteString(" " + cursor + " " + style.Render(truncStr(p.DisplayName(rtl), 40)) +
				"  " + priceStyle.Render(formatPrice(p)) + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + successStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m searchModel) helpKeys() string {
	if m.inputFocused {
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "results")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("a", "add") + "  " + helpEntry("/", "edit query")
}
