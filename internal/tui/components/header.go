package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// Header renders the one-line title row above the page.
type Header struct {
	Title string // current route title
	Index int    // zero-based tab position
	Count int
	Width int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(styles.CompactLogo)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	title := lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).Render(h.Title)

	content := logo + sep + title
	if h.Count > 0 {
		content += sep + styles.Label.Render("Tab ") +
			lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).
				Render(fmt.Sprintf("%d/%d", h.Index+1, h.Count))
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextPrimary).
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		PaddingLeft(1).
		PaddingRight(1)

	return headerStyle.Render(content)
}
