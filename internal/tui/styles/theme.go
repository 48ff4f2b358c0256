package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colours the tab bar is painted with. It is supplied from
// configuration; the bar never picks colours on its own.
type Theme struct {
	Background lipgloss.Color // behind the outline, visible through the notch
	Primary    lipgloss.Color // outline fill and marker disc
	Icon       lipgloss.Color // inactive tab icons
	ActiveIcon lipgloss.Color // icon inside the marker
	// BottomInset is the number of extra filled rows under the tab cells.
	BottomInset int
}

// DefaultTheme is Gotham Night.
func DefaultTheme() Theme {
	return Theme{
		Background: BgDeep,
		Primary:    AccentPrimary,
		Icon:       BgDeep,
		ActiveIcon: BgDeep,
	}
}

// ---------------------------------------------------------------------------
// Panels
// ---------------------------------------------------------------------------

// Panel frames the route content above the bar.
var Panel = lipgloss.NewStyle().
	Background(BgPanel).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(0, 1)

// ---------------------------------------------------------------------------
// Typography
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels. Pass uppercase strings for the
// conventional LABEL look.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// TableHeader is bold, underlined, TextSecondary for column headings.
var TableHeader = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Bold(true).
	Underline(true)

// Divider returns a horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(strings.Repeat("─", width))
}
