package cmd

import (
	"math"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/animate"
	"github.com/Dallionking/notchbar/internal/config"
)

const frame = 16 * time.Millisecond

func TestSampleTraceSettles(t *testing.T) {
	s := sampleTrace(300, 3, 0, 2, -1, 0, frame, 350*time.Millisecond, animate.EaseInOut)

	if got := s[0].Coordinate; got != 50 {
		t.Errorf("first coordinate = %v, want 50", got)
	}
	last := s[len(s)-1]
	if last.Coordinate != 250 || last.Animating {
		t.Errorf("last sample = %+v, want settled at 250", last)
	}
	if last.MarkerOffset != 200 {
		t.Errorf("last marker offset = %v, want 200", last.MarkerOffset)
	}
	for i := 1; i < len(s); i++ {
		if s[i].Coordinate < s[i-1].Coordinate {
			t.Fatalf("coordinate went backwards at %dms: %v -> %v", s[i].TimeMs, s[i-1].Coordinate, s[i].Coordinate)
		}
	}
}

func TestSampleTraceRetargetIsContinuous(t *testing.T) {
	s := sampleTrace(300, 3, 0, 2, 0, 150*time.Millisecond, frame, 350*time.Millisecond, animate.Linear)

	// Linear over 200px never moves more than 200*16/350 px per frame.
	maxStep := 200.0*16/350 + 1e-9
	for i := 1; i < len(s); i++ {
		if d := math.Abs(s[i].Coordinate - s[i-1].Coordinate); d > maxStep {
			t.Fatalf("jump of %.2fpx at %dms", d, s[i].TimeMs)
		}
	}
	last := s[len(s)-1]
	if last.Coordinate != 50 || last.Animating {
		t.Errorf("last sample = %+v, want settled back at 50", last)
	}
	if last.TimeMs < 500 {
		t.Errorf("trace stopped at %dms, want at least 500", last.TimeMs)
	}
}

func TestOutlineFromFlags(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().Int("count", 0, "")
	if err := c.Flags().Set("count", "3"); err != nil {
		t.Fatal(err)
	}

	p, err := outlineFromFlags(c, config.Default(), 300, 0, 3, 1)
	if err != nil {
		t.Fatalf("outlineFromFlags: %v", err)
	}
	want := "M 0 0 H 90 C 120 0, 120 38, 150 38 C 180 38, 180 0, 210 0 H 300 V 64 H 0 Z"
	if got := p.String(); got != want {
		t.Errorf("path =\n  %s\nwant\n  %s", got, want)
	}
}

func TestOutlineFromFlagsDefaultsCountToRoutes(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().Int("count", 0, "")

	cfg := config.Default()
	p, err := outlineFromFlags(c, cfg, 360, 0, 0, 0)
	if err != nil {
		t.Fatalf("outlineFromFlags: %v", err)
	}
	// Three default routes over 360px put tab 0 at 60.
	if got := p.LeftCurve().End.X; got != 60 {
		t.Errorf("notch centre = %v, want 60", got)
	}
}

func TestOutlineFromFlagsRejectsBadInput(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().Int("count", 0, "")
	_ = c.Flags().Set("count", "0")

	if _, err := outlineFromFlags(c, config.Default(), 300, 0, 0, 0); err == nil {
		t.Error("zero count accepted")
	}
	if _, err := outlineFromFlags(c, config.Default(), 0, 0, 3, 0); err == nil {
		t.Error("zero width accepted")
	}
}
