package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4a844")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e8c877")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0e6d0")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8578"))
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c584c"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0645c")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4a844"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b8b2a0"))
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0a0a10")).Background(lipgloss.Color("#d4a844")).Padding(0, 1)
)

// alignLine pads a rendered line to the given width, pushing it to the
// right edge for right-to-left layouts.
func alignLine(s string, width int, rtl bool) string {
	if !rtl {
		return s
	}
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// helpEntry renders a key binding hint for the footer.
func helpEntry(key, label string) string {
	return accentStyle.Render(key) + " " + dimStyle.Render(label)
}
