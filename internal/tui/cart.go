package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/pkg/domain"
)

// cartItem is one product line in the in-memory cart.
type cartItem struct {
	product  domain.Product
	quantity int
}

// cartModel holds the cart for the lifetime of the program; unlike the
// other pages it is not reset on navigation.
type cartModel struct {
	loc *i18n.Localizer

	items     []cartItem
	cursor    int
	statusMsg string

	width  int
	height int
}

func newCartModel(loc *i18n.Localizer) cartModel {
	return cartModel{loc: loc}
}

func (m cartModel) Init() tea.Cmd {
	return nil
}

func (m cartModel) Update(msg tea.Msg) (cartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case addToCartMsg:
		for i := range m.items {
			if m.items[i].product.ID == msg.product.ID {
				m.items[i].quantity++
				return m, nil
			}
		}
		m.items = append(m.items, cartItem{product: msg.product, quantity: 1})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "+", "=":
			if m.cursor < len(m.items) {
				m.items[m.cursor].quantity++
			}
		case "-":
			if m.cursor < len(m.items) {
				m.items[m.cursor].quantity--
				if m.items[m.cursor].quantity <= 0 {
					m.remove(m.cursor)
				}
			}
		case "x", "backspace", "delete":
			if m.cursor < len(m.items) {
				m.remove(m.cursor)
				m.statusMsg = m.loc.T("cart.removed")
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *cartModel) remove(i int) {
	m.items = append(m.items[:i], m.items[i+1:]...)
	if m.cursor >= len(m.items) && m.cursor > 0 {
		m.cursor--
	}
}

func (m cartModel) total() float64 {
	var total float64
	for _, it := range m.items {
		total += it.product.Price * float64(it.quantity)
	}
	return total
}

func (m cartModel) View() string {
	rtl := m.loc.RTL()
	var b strings.Builder

	b.WriteString(alignLine(titleStyle.Render(m.loc.T("cart.title")), m.width, rtl) + "\n\n")

	if len(m.items) == 0 {
		b.WriteString(" " + dimStyle.Render(m.loc.T("cart.empty")) + "\n")
		return b.String()
	}

	currency := ""
	for i, it := range m.items {
		cursor := " "
		style := dimStyle
		if i == m.cursor {
			cursor = ">"
			style = selectedStyle
		}
		if currency == "" && it.product.Currency != "" {
			currency = it.product.Currency
		}
		b.WriteString(fmt.Sprintf(" %s %s  %s  %s\n",
			cursor,
			style.Render(truncStr(it.product.DisplayName(rtl), 36)),
			metaStyle.Render(fmt.Sprintf("x%d", it.quantity)),
			priceStyle.Render(formatPrice(it.product)),
		))
	}

	if currency == "" {
		currency = "SAR"
	}
	b.WriteString("\n " + labelStyle.Render(m.loc.T("cart.total")) + " " +
		priceStyle.Render(fmt.Sprintf("%.2f %s", m.total(), currency)) + "\n")

	if m.statusMsg != "" {
		b.WriteString("\n " + successStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m cartModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("+/-", "qty") + "  " + helpEntry("x", "remove")
}
