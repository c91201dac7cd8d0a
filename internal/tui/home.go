package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

// featuredCount is how many catalog items the home view shows.
const featuredCount = 5

type featuredLoadedMsg struct {
	products []domain.Product
	err      error
}

type homeModel struct {
	client *client.Client
	loc    *i18n.Localizer

	featured []domain.Product
	loading  bool
	errMsg   string

	width  int
	height int
}

func newHomeModel(c *client.Client, loc *i18n.Localizer) homeModel {
	return homeModel{client: c, loc: loc, loading: true}
}

func (m homeModel) Init() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		products, err := c.Products().All(context.Background())
		return featuredLoadedMsg{products: products, err: err}
	}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case featuredLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.loc.T("products.genericError")
			return m, nil
		}
		m.errMsg = ""
		if len(msg.products) > featuredCount {
			msg.products = msg.products[:featuredCount]
		}
		m.featured = msg.products
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m homeModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("home.welcome")), m.width, rtl) + "\n\n")
	b.WriteString(alignLine(labelStyle.Render(m.loc.T("home.featured")), m.width, rtl) + "\n")

	switch {
	case m.loading:
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.loading")) + "\n")
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	case len(m.featured) == 0:
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.empty")) + "\n")
	default:
		for _, p := range m.featured {
			b.WriteString(" " + accentStyle.Render("•") + " " +
				dimStyle.Render(truncStr(p.DisplayName(rtl), 40)) + "  " +
				priceStyle.Render(formatPrice(p)) + "\n")
		}
	}
	return b.String()
}
