package health

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/routes"
)

// Terminal describes the output the bar will be drawn on.
type Terminal struct {
	IsTTY   bool
	Profile termenv.Profile
}

// registerChecks registers all checks across three categories.
func (c *Checker) registerChecks() {
	// Config checks
	c.add("config-file", "config", c.checkConfigFile)
	c.add("config-valid", "config", c.checkConfigValid)
	c.add("route-icons", "config", c.checkRouteIcons)
	c.add("initial-route", "config", c.checkInitialRoute)

	// Layout checks
	c.add("cell-width", "layout", c.checkCellWidth)
	c.add("notch-fit", "layout", c.checkNotchFit)
	c.add("marker-fit", "layout", c.checkMarkerFit)

	// Terminal checks
	c.add("tty", "terminal", c.checkTTY)
	c.add("color-profile", "terminal", c.checkColorProfile)
	c.add("glyph-width", "terminal", c.checkGlyphWidth)
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfigFile(ctx context.Context) CheckResult {
	if c.configPath == "" {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("no %s found, using defaults", config.FileName)}
	}
	return CheckResult{Status: StatusPass, Message: c.configPath}
}

func (c *Checker) checkConfigValid(ctx context.Context) CheckResult {
	errs := config.Validate(c.cfg)
	if len(errs) == 0 {
		return CheckResult{Status: StatusPass, Message: "valid"}
	}
	msg := errs[0].Error()
	if len(errs) > 1 {
		msg = fmt.Sprintf("%s (+%d more)", msg, len(errs)-1)
	}
	return CheckResult{Status: StatusFail, Message: msg}
}

func (c *Checker) checkRouteIcons(ctx context.Context) CheckResult {
	var unknown []string
	for _, r := range c.cfg.Routes {
		if routes.IconFor(r.Key) == routes.IconFallback {
			unknown = append(unknown, r.Key)
		}
	}
	if len(unknown) > 0 {
		return CheckResult{
			Status:  StatusWarn,
			Message: "fallback icon for: " + strings.Join(unknown, ", "),
		}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d routes", len(c.cfg.Routes))}
}

func (c *Checker) checkInitialRoute(ctx context.Context) CheckResult {
	for _, r := range c.cfg.Routes {
		if r.Key == c.cfg.InitialRoute {
			return CheckResult{Status: StatusPass, Message: r.Key}
		}
	}
	return CheckResult{
		Status:  StatusWarn,
		Message: fmt.Sprintf("%q is not one of %s, first tab is used",
			c.cfg.InitialRoute, strings.Join(routes.Keys(c.cfg.Routes), "/")),
	}
}

// ---------------------------------------------------------------------------
// Layout checks
// ---------------------------------------------------------------------------

func (c *Checker) cellWidth() float64 {
	return geometry.CellWidth(float64(c.columns)*c.cfg.Bar.ColumnPixels, len(c.cfg.Routes))
}

func (c *Checker) checkCellWidth(ctx context.Context) CheckResult {
	cell := c.cellWidth()
	if cell <= 0 {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("zero-width cells at %d columns", c.columns)}
	}
	if cell < c.cfg.Bar.ColumnPixels {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("cells narrower than one column (%.1fpx)", cell)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%.1fpx per tab at %d columns", cell, c.columns)}
}

func (c *Checker) checkNotchFit(ctx context.Context) CheckResult {
	cell := c.cellWidth()
	half := c.cfg.Bar.Curve.Width / 2
	if half > cell/2 && len(c.cfg.Routes) > 0 {
		// The edge tabs' notches clip against the bar ends.
		return CheckResult{
			Status:  StatusWarn,
			Message: fmt.Sprintf("notch (%.0fpx) wider than a cell (%.0fpx); edge notches clip", c.cfg.Bar.Curve.Width, cell),
		}
	}
	return CheckResult{Status: StatusPass, Message: "notch fits inside a cell"}
}

func (c *Checker) checkMarkerFit(ctx context.Context) CheckResult {
	cell := c.cellWidth()
	if c.cfg.Bar.MarkerSize > cell {
		return CheckResult{
			Status:  StatusWarn,
			Message: fmt.Sprintf("marker (%.0fpx) wider than a cell (%.0fpx)", c.cfg.Bar.MarkerSize, cell),
		}
	}
	return CheckResult{Status: StatusPass, Message: "marker fits inside a cell"}
}

// ---------------------------------------------------------------------------
// Terminal checks
// ---------------------------------------------------------------------------

func (c *Checker) checkTTY(ctx context.Context) CheckResult {
	if !c.term.IsTTY {
		return CheckResult{Status: StatusWarn, Message: "stdout is not a terminal"}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d columns", c.columns)}
}

func (c *Checker) checkColorProfile(ctx context.Context) CheckResult {
	switch c.term.Profile {
	case termenv.TrueColor:
		return CheckResult{Status: StatusPass, Message: "true colour"}
	case termenv.ANSI256:
		return CheckResult{Status: StatusPass, Message: "256 colours"}
	case termenv.ANSI:
		return CheckResult{Status: StatusWarn, Message: "16 colours, theme will be approximated"}
	default:
		return CheckResult{Status: StatusWarn, Message: "no colour, the outline will not be visible"}
	}
}

func (c *Checker) checkGlyphWidth(ctx context.Context) CheckResult {
	glyphs := []string{"▀", "▄", "◖", "◗"}
	for _, r := range c.cfg.Routes {
		glyphs = append(glyphs, r.Icon().Glyph())
	}
	var wide []string
	for _, g := range glyphs {
		if runewidth.StringWidth(g) != 1 {
			wide = append(wide, g)
		}
	}
	if len(wide) > 0 {
		return CheckResult{
			Status:  StatusWarn,
			Message: "double-width glyphs in this locale: " + strings.Join(wide, " "),
		}
	}
	return CheckResult{Status: StatusPass, Message: "all glyphs single-width"}
}
