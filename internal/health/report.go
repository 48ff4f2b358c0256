package health

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// stripWidth is the width of the notch preview in the report.
const stripWidth = 48

var categoryOrder = []string{"config", "layout", "terminal"}

func categoryLabel(cat string) string {
	switch cat {
	case "config":
		return "Configuration"
	case "layout":
		return "Bar Layout"
	case "terminal":
		return "Terminal"
	default:
		return strings.ToUpper(cat[:1]) + cat[1:]
	}
}

// FormatReport renders the doctor output: the measured layout with a
// preview of the first tab's notch, results per category, then every
// warning and failure in full.
func FormatReport(r *Report) string {
	var b strings.Builder

	b.WriteString("\n  " + styles.Title.Render("Tab Bar Diagnostics") + "\n")
	b.WriteString("  " + styles.Divider(stripWidth) + "\n")

	l := r.Layout
	b.WriteString("  " + styles.Dim(layoutLine(l)) + "\n")
	if strip := notchStrip(l, stripWidth); strip != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(styles.AccentPrimary).Render(strip) + "\n")
	}

	grouped := make(map[string][]CheckResult)
	for _, res := range r.Results {
		grouped[res.Category] = append(grouped[res.Category], res)
	}

	nameStyle := lipgloss.NewStyle().Width(16).Foreground(styles.TextPrimary)
	for _, cat := range categoryOrder {
		results := grouped[cat]
		if len(results) == 0 {
			continue
		}
		ok := 0
		for _, res := range results {
			if res.Status == StatusPass {
				ok++
			}
		}
		heading := lipgloss.NewStyle().Foreground(styles.AccentSecondary).Bold(true).Render(categoryLabel(cat))
		b.WriteString(fmt.Sprintf("\n  %s  %s\n", heading, styles.Dim(fmt.Sprintf("%d/%d ok", ok, len(results)))))
		for _, res := range results {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				statusSymbol(res.Status),
				nameStyle.Render(res.Name),
				styles.Dim(styles.TruncateWithEllipsis(res.Message, 44)),
			))
		}
	}

	var attention []CheckResult
	for _, res := range r.Results {
		if res.Status != StatusPass {
			attention = append(attention, res)
		}
	}
	if len(attention) > 0 {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(styles.StatusWarn).Bold(true).Render("Needs attention") + "\n")
		for _, res := range attention {
			b.WriteString(fmt.Sprintf("  %s %s: %s\n", statusSymbol(res.Status), res.Name, res.Message))
		}
	}

	b.WriteString("\n  " + styles.Divider(stripWidth) + "\n")
	summary := fmt.Sprintf("%d/%d passed", r.Passed, r.Total)
	if r.Warned > 0 {
		summary += fmt.Sprintf(", %d warning(s)", r.Warned)
	}
	if r.Failed > 0 {
		summary += fmt.Sprintf(", %d failed", r.Failed)
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(summary) + "  " + overallBadge(r) + "\n")

	return b.String()
}

// layoutLine summarises the measured geometry.
func layoutLine(l Layout) string {
	return fmt.Sprintf("%d cols · %d tabs · %.1fpx cells · notch %gx%gpx · marker %gpx",
		l.Columns, l.Tabs, l.CellWidth, l.CurveWidth, l.CurveHeight, l.MarkerSize)
}

// notchStrip previews the bar top edge with the first tab focused, scaled
// to width characters. Characters whose centre falls inside the notch are
// blank, so a notch clipping the left end shows as a gap at column 0.
func notchStrip(l Layout, width int) string {
	if width <= 0 || l.ViewportWidth <= 0 || l.Tabs <= 0 {
		return ""
	}
	x := geometry.Coordinate(0, l.Tabs, l.CellWidth)
	half := l.CurveWidth / 2
	px := l.ViewportWidth / float64(width)

	var b strings.Builder
	for i := 0; i < width; i++ {
		c := (float64(i) + 0.5) * px
		if math.Abs(c-x) < half {
			b.WriteByte(' ')
		} else {
			b.WriteString("▀")
		}
	}
	return b.String()
}

func statusSymbol(s Status) string {
	var c lipgloss.Color
	switch s {
	case StatusPass:
		c = styles.StatusOK
	case StatusWarn:
		c = styles.StatusWarn
	case StatusFail:
		c = styles.StatusError
	default:
		c = styles.TextMuted
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(s.Symbol())
}

func overallBadge(r *Report) string {
	switch {
	case r.Failed > 0:
		return lipgloss.NewStyle().Foreground(styles.StatusError).Bold(true).Render("BROKEN")
	case r.Warned > 0:
		return lipgloss.NewStyle().Foreground(styles.StatusWarn).Bold(true).Render("DEGRADED")
	default:
		return lipgloss.NewStyle().Foreground(styles.StatusOK).Bold(true).Render("READY")
	}
}
