package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

type tryOnLoadedMsg struct {
	products []domain.Product
	err      error
}

// tryOnModel previews a catalog item in a framed pane, the terminal
// stand-in for the storefront's virtual try-on page.
type tryOnModel struct {
	client *client.Client
	loc    *i18n.Localizer

	products []domain.Product
	cursor   int
	loading  bool
	errMsg   string
	selected *domain.Product

	width  int
	height int
}

var previewFrame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#d4a844")).
	Padding(1, 3)

func newTryOnModel(c *client.Client, loc *i18n.Localizer) tryOnModel {
	return tryOnModel{client: c, loc: loc, loading: true}
}

func (m tryOnModel) Init() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		products, err := c.Products().All(context.Background())
		return tryOnLoadedMsg{products: products, err: err}
	}
}

func (m tryOnModel) Update(msg tea.Msg) (tryOnModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tryOnLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.loc.T("products.genericError")
			return m, nil
		}
		m.products = msg.products
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.selected != nil {
			if msg.String() == "esc" {
				m.selected = nil
			}
			return m, nil
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.products)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.products) {
				p := m.products[m.cursor]
				m.selected = &p
			}
		}
		return m, nil
	}
	return m, nil
}

func (m tryOnModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("tryon.title")), m.width, rtl) + "\n\n")

	if m.selected != nil {
		p := m.selected
		var pane strings.Builder
		pane.WriteString(selectedStyle.Render(p.DisplayName(rtl)) + "\n")
		pane.WriteString(priceStyle.Render(formatPrice(*p)) + "\n")
		if len(p.Sizes) > 0 {
			pane.WriteString(metaStyle.Render(strings.Join(p.Sizes, " / ")) + "\n")
		}
		pane.WriteString("\n" + dimStyle.Render(m.loc.T("tryon.preview")))
		b.WriteString(previewFrame.Render(pane.String()) + "\n")
		return b.String()
	}

	switch {
	case m.loading:
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.loading")) + "\n")
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	case len(m.products) == 0:
		b.WriteString(" " + dimStyle.Render(m.loc.T("tryon.empty")) + "\n")
	default:
		b.WriteString(" " + dimStyle.Render(m.loc.T("tryon.hint")) + "\n\n")
		for i, p := range m.products {
			cursor := " "
			style := dimStyle
			if i == m.cursor {
				cursor = ">"
				style = selectedStyle
			}
			b.WriteString(" " + cursor + " " + style.Render(truncStr(p.DisplayName(rtl), 40)) + "\n")
		}
	}
	return b.String()
}

func (m tryOnModel) helpKeys() string {
	if m.selected != nil {
		return helpEntry("esc", "back")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "preview")
}
