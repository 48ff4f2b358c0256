package health

import (
	"context"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/routes"
)

var colorTTY = Terminal{IsTTY: true, Profile: termenv.TrueColor}

func result(t *testing.T, r *Report, name string) CheckResult {
	t.Helper()
	for _, res := range r.Results {
		if res.Name == name {
			return res
		}
	}
	t.Fatalf("no result for %q", name)
	return CheckResult{}
}

func TestDefaultsAreHealthy(t *testing.T) {
	c := NewChecker(config.Default(), "notchbar.json", 80, colorTTY)
	r := c.RunAll(context.Background())

	if !r.Healthy {
		for _, res := range r.Results {
			t.Logf("%s %s: %s", res.Status, res.Name, res.Message)
		}
		t.Fatalf("defaults should be healthy")
	}
	if r.Total != len(c.Names()) {
		t.Errorf("Total = %d, want %d", r.Total, len(c.Names()))
	}
	if got := result(t, r, "config-file").Status; got != StatusPass {
		t.Errorf("config-file = %s, want pass", got)
	}
}

func TestMissingConfigFileWarns(t *testing.T) {
	r := NewChecker(config.Default(), "", 80, colorTTY).RunNamed(context.Background(), "config-file")
	if r.Total != 1 || r.Results[0].Status != StatusWarn {
		t.Fatalf("got %+v, want a single warning", r.Results)
	}
}

func TestInvalidBarHeightFails(t *testing.T) {
	cfg := config.Default()
	cfg.Bar.Height = 0

	r := NewChecker(cfg, "", 80, colorTTY).RunCategory(context.Background(), "config")
	if r.Healthy {
		t.Fatalf("report healthy with zero bar height")
	}
	if got := result(t, r, "config-valid").Status; got != StatusFail {
		t.Errorf("config-valid = %s, want fail", got)
	}
}

func TestUnknownRouteUsesFallbackIcon(t *testing.T) {
	cfg := config.Default()
	cfg.Routes = append(cfg.Routes, routes.Descriptor{Key: "settings", Title: "Settings"})
	cfg.InitialRoute = "missing"

	r := NewChecker(cfg, "", 80, colorTTY).RunCategory(context.Background(), "config")

	icons := result(t, r, "route-icons")
	if icons.Status != StatusWarn || !strings.Contains(icons.Message, "settings") {
		t.Errorf("route-icons = %s %q, want warning naming settings", icons.Status, icons.Message)
	}
	if got := result(t, r, "initial-route").Status; got != StatusWarn {
		t.Errorf("initial-route = %s, want warn", got)
	}
}

func TestNarrowTerminalLayout(t *testing.T) {
	// 10 columns x 8px over three tabs leaves ~27px cells.
	r := NewChecker(config.Default(), "", 10, colorTTY).RunCategory(context.Background(), "layout")

	if r.Total != 3 {
		t.Fatalf("layout checks = %d, want 3", r.Total)
	}
	if got := result(t, r, "notch-fit").Status; got != StatusWarn {
		t.Errorf("notch-fit = %s, want warn", got)
	}
	if got := result(t, r, "marker-fit").Status; got != StatusWarn {
		t.Errorf("marker-fit = %s, want warn", got)
	}
	if !r.Healthy {
		t.Errorf("warnings alone should not fail the report")
	}
}

func TestZeroColumnsFails(t *testing.T) {
	r := NewChecker(config.Default(), "", 0, colorTTY).RunNamed(context.Background(), "cell-width")
	if r.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", r.Failed)
	}
}

func TestColorProfile(t *testing.T) {
	tests := []struct {
		profile termenv.Profile
		want    Status
	}{
		{termenv.TrueColor, StatusPass},
		{termenv.ANSI256, StatusPass},
		{termenv.ANSI, StatusWarn},
		{termenv.Ascii, StatusWarn},
	}
	for _, tt := range tests {
		c := NewChecker(config.Default(), "", 80, Terminal{IsTTY: true, Profile: tt.profile})
		r := c.RunNamed(context.Background(), "color-profile")
		if got := r.Results[0].Status; got != tt.want {
			t.Errorf("profile %v: status = %s, want %s", tt.profile, got, tt.want)
		}
	}
}

func TestCancelledContextFailsEveryCheck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewChecker(config.Default(), "", 80, colorTTY).RunAll(ctx)
	if r.Failed != r.Total || r.Total == 0 {
		t.Fatalf("Failed = %d of %d, want all", r.Failed, r.Total)
	}
}

func TestFormatReport(t *testing.T) {
	r := NewChecker(config.Default(), "", 10, colorTTY).RunAll(context.Background())
	out := FormatReport(r)
	for _, want := range []string{"Tab Bar Diagnostics", "Configuration", "Bar Layout", "Terminal", "notch-fit"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportCarriesLayout(t *testing.T) {
	r := NewChecker(config.Default(), "", 80, colorTTY).RunCategory(context.Background(), "layout")
	got := r.Layout
	want := Layout{
		Columns:       80,
		Tabs:          3,
		ViewportWidth: 640,
		CellWidth:     640.0 / 3,
		BarHeight:     64,
		CurveWidth:    120,
		CurveHeight:   38,
		MarkerSize:    40,
	}
	if got != want {
		t.Errorf("Layout = %+v, want %+v", got, want)
	}

	out := FormatReport(r)
	if want := "80 cols · 3 tabs · 213.3px cells · notch 120x38px · marker 40px"; !strings.Contains(out, want) {
		t.Errorf("report missing layout line %q", want)
	}
	if !strings.Contains(out, "3/3 ok") {
		t.Error("layout heading should count 3/3 ok")
	}
	if strings.Contains(out, "Needs attention") {
		t.Error("healthy layout should not list anything needing attention")
	}
}

func TestFormatReportListsWarningsInFull(t *testing.T) {
	// No config path: config-file warns.
	r := NewChecker(config.Default(), "", 80, colorTTY).RunAll(context.Background())
	out := FormatReport(r)
	if !strings.Contains(out, "Needs attention") {
		t.Fatal("report should have a Needs attention section")
	}
	if want := "config-file: no " + config.FileName + " found, using defaults"; !strings.Contains(out, want) {
		t.Errorf("report missing %q", want)
	}
}

func TestNotchStrip(t *testing.T) {
	tests := []struct {
		name string
		l    Layout
		want string
	}{
		{
			name: "notch inside first cell",
			l:    Layout{ViewportWidth: 300, Tabs: 3, CellWidth: 100, CurveWidth: 60},
			want: "▀▀      " + strings.Repeat("▀", 22),
		},
		{
			name: "notch clips the left end",
			l:    Layout{ViewportWidth: 300, Tabs: 3, CellWidth: 100, CurveWidth: 120},
			want: strings.Repeat(" ", 11) + strings.Repeat("▀", 19),
		},
		{
			name: "flat bar",
			l:    Layout{ViewportWidth: 300, Tabs: 3, CellWidth: 100},
			want: strings.Repeat("▀", 30),
		},
		{
			name: "no tabs",
			l:    Layout{ViewportWidth: 300},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notchStrip(tt.l, 30); got != tt.want {
				t.Errorf("notchStrip = %q, want %q", got, tt.want)
			}
		})
	}
}
