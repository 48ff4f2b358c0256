package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Dallionking/notchbar/internal/animate"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Config for completeness and consistency. It returns
// every issue found rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	// --- Routes ---
	if len(cfg.Routes) == 0 {
		errs = append(errs, ValidationError{Field: "routes", Message: "at least one route is required"})
	}
	seen := make(map[string]bool, len(cfg.Routes))
	for i, r := range cfg.Routes {
		field := fmt.Sprintf("routes[%d].key", i)
		if r.Key == "" {
			errs = append(errs, ValidationError{Field: field, Message: "required field is empty"})
			continue
		}
		if seen[r.Key] {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("duplicate key %q", r.Key)})
		}
		seen[r.Key] = true
	}

	// --- Bar ---
	positive := []struct {
		field string
		v     float64
	}{
		{"bar.height", cfg.Bar.Height},
		{"bar.columnPixels", cfg.Bar.ColumnPixels},
		{"bar.rowPixels", cfg.Bar.RowPixels},
		{"bar.markerSize", cfg.Bar.MarkerSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Message: fmt.Sprintf("must be > 0, got %g", p.v),
			})
		}
	}
	if cfg.Bar.Curve.Width < 0 {
		errs = append(errs, ValidationError{
			Field:   "bar.curve.width",
			Message: fmt.Sprintf("must be >= 0, got %g", cfg.Bar.Curve.Width),
		})
	}
	if cfg.Bar.Curve.Height < 0 || cfg.Bar.Curve.Height > cfg.Bar.Height {
		errs = append(errs, ValidationError{
			Field:   "bar.curve.height",
			Message: fmt.Sprintf("must be within [0, bar.height], got %g", cfg.Bar.Curve.Height),
		})
	}

	// --- Animation ---
	if cfg.Animation.DurationMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "animation.durationMs",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.Animation.DurationMs),
		})
	}
	if cfg.Animation.FPS < 1 || cfg.Animation.FPS > 240 {
		errs = append(errs, ValidationError{
			Field:   "animation.fps",
			Message: fmt.Sprintf("must be within [1, 240], got %d", cfg.Animation.FPS),
		})
	}
	if _, err := animate.ParseEasing(cfg.Animation.Easing); err != nil {
		errs = append(errs, ValidationError{Field: "animation.easing", Message: err.Error()})
	}

	// --- Theme ---
	colors := []struct {
		field string
		v     string
	}{
		{"theme.background", cfg.Theme.Background},
		{"theme.primary", cfg.Theme.Primary},
		{"theme.icon", cfg.Theme.Icon},
		{"theme.activeIcon", cfg.Theme.ActiveIcon},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.v); err != nil {
			errs = append(errs, ValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("not a #rrggbb colour: %q", c.v),
			})
		}
	}
	if cfg.Theme.BottomInset < 0 {
		errs = append(errs, ValidationError{
			Field:   "theme.bottomInset",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.Theme.BottomInset),
		})
	}

	return errs
}
