package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if len(cfg.Routes) != 3 {
		t.Fatalf("default routes = %d, want 3", len(cfg.Routes))
	}
	if cfg.Bar.Curve.Width != 120 || cfg.Bar.Curve.Height != 38 {
		t.Errorf("default curve = %+v, want 120x38", cfg.Bar.Curve)
	}
	if got := cfg.Duration(); got != 350*time.Millisecond {
		t.Errorf("Duration = %v, want 350ms", got)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("defaults do not validate: %v", errs)
	}
}

func TestReadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `{
  "initialRoute": "stats",
  "routes": [
    {"key": "home", "title": "Home"},
    {"key": "stats", "title": "Stats"},
    {"key": "profile", "title": "Profile"},
    {"key": "inbox", "title": "Inbox"}
  ],
  "bar": {"curve": {"width": 100}},
  "animation": {"durationMs": 500}
}`)

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cfg.Routes) != 4 || cfg.Routes[3].Key != "inbox" {
		t.Errorf("routes = %+v", cfg.Routes)
	}
	if cfg.InitialRoute != "stats" {
		t.Errorf("initialRoute = %q", cfg.InitialRoute)
	}
	if cfg.Bar.Curve.Width != 100 || cfg.Bar.Curve.Height != 38 {
		t.Errorf("curve = %+v, want width override with default height", cfg.Bar.Curve)
	}
	if cfg.Duration() != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", cfg.Duration())
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Read of a missing file returned no error")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NOTCHBAR_ANIMATION_DURATIONMS", "120")
	cfg, err := Read("")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cfg.Animation.DurationMs != 120 {
		t.Fatalf("durationMs = %d, want 120", cfg.Animation.DurationMs)
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	cfg := Default()
	cfg.Routes = append(cfg.Routes, cfg.Routes[0])
	cfg.Bar.Height = 0
	cfg.Animation.Easing = "bounce"
	cfg.Theme.Primary = "cyan"

	fields := map[string]bool{}
	for _, e := range Validate(cfg) {
		fields[e.Field] = true
	}
	for _, want := range []string{"routes[3].key", "bar.height", "bar.curve.height", "animation.easing", "theme.primary"} {
		if !fields[want] {
			t.Errorf("missing validation error for %s (got %v)", want, fields)
		}
	}
}

func TestFindUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, FileName)
	writeFile(t, want, `{}`)

	got, err := findUp(nested)
	if err != nil {
		t.Fatalf("findUp: %v", err)
	}
	if got != want {
		t.Fatalf("findUp = %s, want %s", got, want)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `{"animation": {"durationMs": 200}}`)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Watch(ctx)

	writeFile(t, path, `{"animation": {"durationMs": 400}}`)

	select {
	case r := <-ch:
		if r.Err != nil {
			t.Fatalf("reload error: %v", r.Err)
		}
		if r.Config.Animation.DurationMs != 400 {
			t.Fatalf("reloaded durationMs = %d, want 400", r.Config.Animation.DurationMs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `{"animation": {"durationMs": 100}}`)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Watch(ctx)

	// Five writes 10ms apart all land inside one 100ms debounce window.
	for i := 1; i <= 5; i++ {
		writeFile(t, path, fmt.Sprintf(`{"animation": {"durationMs": %d}}`, 100+i))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case r := <-ch:
		if r.Err != nil {
			t.Fatalf("reload error: %v", r.Err)
		}
		if r.Config.Animation.DurationMs != 105 {
			t.Fatalf("reloaded durationMs = %d, want 105 from the last write", r.Config.Animation.DurationMs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	select {
	case r := <-ch:
		t.Fatalf("burst produced a second reload: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}
