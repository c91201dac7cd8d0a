package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/internal/session"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

type recsLoadedMsg struct {
	products []domain.Product
	err      error
}

type recommendModel struct {
	client *client.Client
	loc    *i18n.Localizer

	// user comes from the session store at mount; nil renders the
	// login prompt and no request is made.
	user *domain.User

	products  []domain.Product
	cursor    int
	loading   bool
	errMsg    string
	statusMsg string

	width  int
	height int
}

func newRecommendModel(c *client.Client, loc *i18n.Localizer, store *session.Store) recommendModel {
	m := recommendModel{client: c, loc: loc}
	if user, ok := store.Load(); ok {
		m.user = user
		m.loading = true
	}
	return m
}

func (m recommendModel) Init() tea.Cmd {
	if m.user == nil {
		return nil
	}
	return m.load(m.user.Email)
}

func (m recommendModel) load(userID string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		products, err := c.Products().Recommendations(context.Background(), userID)
		return recsLoadedMsg{products: products, err: err}
	}
}

func (m recommendModel) Update(msg tea.Msg) (recommendModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.loc.T("recommendations.genericError")
			return m, nil
		}
		m.errMsg = ""
		m.products = msg.products
		m.cursor = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.products)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "a":
			if m.cursor < len(m.products) {
				p := m.products[m.cursor]
				m.statusMsg = m.loc.T("products.added")
				return m, func() tea.Msg { return addToCartMsg{product: p} }
			}
		}
		return m, nil
	}
	return m, nil
}

func (m recommendModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("recommendations.title")), m.width, rtl) + "\n\n")

	switch {
	case m.user == nil:
		b.WriteString(" " + dimStyle.Render(m.loc.T("recommendations.loginRequired")) + "\n")
	case m.loading:
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.loading")) + "\n")
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	case len(m.products) == 0:
		b.WriteString(" " + dimStyle.Render(m.loc.T("recommendations.empty")) + "\n")
	default:
		for i, p := range m.products {
			cursor := " "
			style := dimStyle
			if i == m.cursor {
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
