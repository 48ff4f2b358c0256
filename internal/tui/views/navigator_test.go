package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/routes"
)

func TestRenderOnce(t *testing.T) {
	cfg := config.Default()
	out := RenderOnce(cfg, 60, routes.Stats)

	lines := strings.Split(ansi.Strip(out), "\n")
	// Four outline rows at 64px / 16px plus the label row.
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5\n%s", len(lines), ansi.Strip(out))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
	labels := lines[len(lines)-1]
	for _, r := range cfg.Routes {
		if !strings.Contains(labels, r.Label()) {
			t.Errorf("labels %q missing %q", labels, r.Label())
		}
	}
	if cfg.InitialRoute != routes.Home {
		t.Errorf("RenderOnce modified the caller's config")
	}
}

func TestRenderOnceMarkerFollowsRoute(t *testing.T) {
	cfg := config.Default()
	for i, r := range cfg.Routes {
		top := strings.Split(ansi.Strip(RenderOnce(cfg, 60, r.Key)), "\n")[0]
		col := strings.IndexRune(top, '◖')
		if col < 0 {
			t.Fatalf("%s: no marker in %q", r.Key, top)
		}
		from, to := i*20, (i+1)*20
		// The marker's left cap sits inside the focused cell.
		if n := len([]rune(top[:col])); n < from || n >= to {
			t.Errorf("%s: marker at column %d, want within [%d, %d)", r.Key, n, from, to)
		}
	}
}

func TestRenderOnceWithoutRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.Routes = nil
	if got := RenderOnce(cfg, 60, ""); got != "" {
		t.Errorf("RenderOnce with no routes = %q, want empty", got)
	}
}
