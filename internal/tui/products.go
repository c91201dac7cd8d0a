package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

type productsLoadedMsg struct {
	products []domain.Product
	err      error
}

type productDetailMsg struct {
	product *domain.Product
	err     error
}

type copyResultMsg struct{ err error }

type productsModel struct {
	client *client.Client
	loc    *i18n.Localizer

	products  []domain.Product
	cursor    int
	loading   bool
	errMsg    string
	statusMsg string

	// detail is the /product/:id sub-view.
	detail   bool
	selected *domain.Product

	width  int
	height int
}

func newProductsModel(c *client.Client, loc *i18n.Localizer) productsModel {
	return productsModel{client: c, loc: loc, loading: true}
}

func (m productsModel) Init() tea.Cmd {
	return m.load()
}

func (m productsModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		products, err := c.Products().All(context.Background())
		return productsLoadedMsg{products: products, err: err}
	}
}

func (m productsModel) loadDetail(id string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		product, err := c.Products().ByID(context.Background(), id)
		return productDetailMsg{product: product, err: err}
	}
}

func (m productsModel) Update(msg tea.Msg) (productsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.loc.T("products.genericError")
			return m, nil
		}
		m.errMsg = ""
		m.products = msg.products
		if m.cursor >= len(m.products) {
			m.cursor = 0
		}
		return m, nil

	case productDetailMsg:
		if msg.err != nil {
			m.errMsg = m.loc.T("products.genericError")
			m.detail = false
			return m, nil
		}
		m.selected = msg.product
		return m, nil

	case copyResultMsg:
		if msg.err == nil {
			m.statusMsg = m.loc.T("products.copied")
		}
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

func (m productsModel) updateKeys(msg tea.KeyMsg) (productsModel, tea.Cmd) {
	m.statusMsg = ""

	if m.detail {
		switch msg.String() {
		case "esc":
			m.detail = false
			m.selected = nil
		case "a":
			if m.selected != nil {
				p := *m.selected
				m.statusMsg = m.loc.T("products.added")
				return m, func() tea.Msg { return addToCartMsg{product: p} }
			}
		case "c":
			if m.selected != nil {
				name := m.selected.DisplayName(m.loc.RTL())
				return m, func() tea.Msg {
					return copyResultMsg{err: clipboard.WriteAll(name)}
				}
			}
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
			m.detail = true
			m.selected = &p
			// Fresh fetch so the detail view shows current stock/price.
			return m, m.loadDetail(p.ID)
		}
	case "a":
		if m.cursor < len(m.products) {
			p := m.products[m.cursor]
			m.statusMsg = m.loc.T("products.added")
			return m, func() tea.Msg { return addToCartMsg{product: p} }
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m productsModel) View() string {
	rtl := m.loc.RTL()

	if m.detail && m.selected != nil {
		return m.detailView(rtl)
	}

	var b strings.Builder
	b.WriteString(alignLine(titleStyle.Render(m.loc.T("products.title")), m.width, rtl) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(" " + dimStyle.Render(m.loc.T("common.loading")) + "\n")
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	case len(m.products) == 0:
		b.WriteString(" " + dimStyle.Render(m.loc.T("products.empty")) + "\n")
	default:
		for i, p := range m.products {
			cursor := " "
			style := dimStyle
			if i == m.cursor {
				cursor = ">"
				style = selectedStyle
			}
			stock := successStyle.Render(m.loc.T("products.inStock"))
			if !p.InStock {
				stock = errorStyle.Render(m.loc.T("products.outOfStock"))
			}
			line := cursor + " " + style.Render(truncStr(p.DisplayName(rtl), 40)) +
				"  " + priceStyle.Render(formatPrice(p)) + "  " + stock
			if p.Category != "" {
				line += "  " + metaStyle.Render(p.Category)
			}
			b.WriteString(" " + line + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + successStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m productsModel) detailView(rtl bool) string {
	p := m.selected
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(p.DisplayName(rtl)), m.width, rtl) + "\n\n")
	b.WriteString(" " + priceStyle.Render(formatPrice(*p)) + "\n")
	if p.Category != "" {
		b.WriteString(" " + metaStyle.Render(p.Category) + "\n")
	}
	if p.Rating > 0 {
		stars := int(p.Rating + 0.5)
		if stars > 5 {
			stars = 5
		}
		b.WriteString(" " + accentStyle.Render(strings.Repeat("★", stars)+strings.Repeat("☆", 5-stars)) + "\n")
	}
	if desc := p.DisplayDescription(rtl); desc != "" {
		b.WriteString("\n " + dimStyle.Render(desc) + "\n")
	}
	if len(p.Sizes) > 0 {
		b.WriteString("\n")
		for _, s := range p.Sizes {
			b.WriteString(" " + chipStyle.Render(s))
		}
		b.WriteString("\n")
	}
	if p.InStock {
		b.WriteString("\n " + successStyle.Render(m.loc.T("products.inStock")) + "\n")
	} else {
		b.WriteString("\n " + errorStyle.Render(m.loc.T("products.outOfStock")) + "\n")
	}
	if m.statusMsg != "" {
		b.WriteString("\n " + successStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m productsModel) helpKeys() string {
	if m.detail {
		return helpEntry("a", "add") + "  " + helpEntry("c", "copy") + "  " + helpEntry("esc", "back")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "detail") + "  " +
		helpEntry("a", "add") + "  " + helpEntry("r", "reload")
}
