package views

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/tui/models"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// RunOptions tunes the interactive program.
type RunOptions struct {
	// ConfigPath is watched for live reloads when non-empty.
	ConfigPath string
	// InitialRoute overrides cfg.InitialRoute when non-empty.
	InitialRoute string
	// LogFile receives log output; the TUI owns stdout.
	LogFile string
}

// RunNavigator launches the full-screen tab bar program.
//
// Mouse clicks are resolved through bubblezone regions around each tab
// cell. When a config file is known it is watched and reloads are applied
// to the running program.
func RunNavigator(cfg *config.Config, opts RunOptions) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "notchbar")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if opts.InitialRoute != "" {
		c := *cfg
		c.InitialRoute = opts.InitialRoute
		cfg = &c
	}

	zm := zone.New()
	defer zm.Close()

	navOpts := []models.NavigatorOption{models.WithZones(zm)}

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			// Run without live reload.
			log.Printf("config watcher disabled: %v", err)
		} else {
			defer w.Close()
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			navOpts = append(navOpts, models.WithReloads(w.Watch(ctx)))
		}
	}

	log.Printf("starting with %d routes, initial %q", len(cfg.Routes), cfg.InitialRoute)

	p := tea.NewProgram(
		models.NewNavigator(cfg, navOpts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running navigator: %w", err)
	}
	return nil
}

// RenderOnce renders a single frame of the bar, at rest on route, with the
// route titles under each cell. Used for non-interactive output.
func RenderOnce(cfg *config.Config, columns int, route string) string {
	if columns <= 0 {
		columns = 80
	}

	c := *cfg
	if route != "" {
		c.InitialRoute = route
	}
	bar := models.NewTabBar(&c)
	bar.SetWidth(columns)

	list := bar.Routes()
	if len(list) == 0 {
		return ""
	}

	labels := make([]string, len(list))
	for i, r := range list {
		from, to := bar.CellSpan(i)
		labels[i] = lipgloss.NewStyle().
			Width(to - from).
			MaxWidth(to - from).
			Align(lipgloss.Center).
			Foreground(styles.TextSecondary).
			Render(r.Label())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		bar.View(time.Now()),
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
	)
}
