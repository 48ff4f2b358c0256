package styles

import "github.com/charmbracelet/lipgloss"

// Gotham Night palette: midnight backgrounds, electric cyan accents.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0a0e14") // screen background behind the bar
	BgPanel   = lipgloss.Color("#11151c") // content pane

	// Accents
	AccentPrimary   = lipgloss.Color("#4fc1ff") // bar fill, marker disc
	AccentSecondary = lipgloss.Color("#39c5bb")
	AccentGold      = lipgloss.Color("#f5a623")

	// Status
	StatusOK    = lipgloss.Color("#22c55e")
	StatusWarn  = lipgloss.Color("#f59e0b")
	StatusError = lipgloss.Color("#ef4444")

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0")
	TextSecondary = lipgloss.Color("#94a3b8")
	TextMuted     = lipgloss.Color("#64748b")

	// Borders
	BorderNormal = lipgloss.Color("#2d3748")
)
