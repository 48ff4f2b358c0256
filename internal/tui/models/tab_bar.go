package models

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/notchbar/internal/animate"
	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/routes"
	"github.com/Dallionking/notchbar/internal/tui/components"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// ThemeFrom converts configured colours into a bar theme. Empty colours
// keep the Gotham Night defaults.
func ThemeFrom(cfg *config.Config) styles.Theme {
	t := styles.DefaultTheme()
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Background, cfg.Theme.Background)
	set(&t.Primary, cfg.Theme.Primary)
	set(&t.Icon, cfg.Theme.Icon)
	set(&t.ActiveIcon, cfg.Theme.ActiveIcon)
	t.BottomInset = cfg.Theme.BottomInset
	return t
}

// MetricsFrom converts configured bar sizes into render metrics. Sizes that
// are not positive keep their defaults. The curve is taken as configured: a
// zero curve is a flat bar with no notch.
func MetricsFrom(cfg *config.Config) components.Metrics {
	m := components.DefaultMetrics()
	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	set(&m.ColumnPixels, cfg.Bar.ColumnPixels)
	set(&m.RowPixels, cfg.Bar.RowPixels)
	set(&m.BarHeight, cfg.Bar.Height)
	set(&m.MarkerSize, cfg.Bar.MarkerSize)
	m.Curve = geometry.Curve{Width: cfg.Bar.Curve.Width, Height: cfg.Bar.Curve.Height}
	return m
}

// NewTabBar builds a bar from configuration focused on the configured
// initial route. An unknown easing name falls back to ease-in-out.
func NewTabBar(cfg *config.Config) *components.CurvedTabBar {
	easing, err := animate.ParseEasing(cfg.Animation.Easing)
	if err != nil {
		easing = animate.EaseInOut
	}
	active := routes.IndexOf(cfg.Routes, cfg.InitialRoute)
	return components.NewCurvedTabBar(cfg.Routes, active, ThemeFrom(cfg), MetricsFrom(cfg), cfg.Duration(), easing)
}
