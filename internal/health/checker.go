package health

import (
	"context"
	"time"

	"github.com/Dallionking/notchbar/internal/config"
)

// Status represents the result of a single health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "+"
	case StatusWarn:
		return "!"
	case StatusFail:
		return "x"
	default:
		return "?"
	}
}

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string
	Category string // "config", "layout", "terminal"
	Status   Status
	Message  string
	Duration time.Duration
}

// Report holds results of all checks.
type Report struct {
	Results  []CheckResult
	Layout   Layout
	Passed   int
	Warned   int
	Failed   int
	Total    int
	Duration time.Duration
	Healthy  bool
}

// Layout is the bar geometry the checks were run against, in pixels.
type Layout struct {
	Columns       int
	Tabs          int
	ViewportWidth float64
	CellWidth     float64
	BarHeight     float64
	CurveWidth    float64
	CurveHeight   float64
	MarkerSize    float64
}

// Check is a named, categorized health check function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Checker runs the registered checks against a loaded configuration.
type Checker struct {
	checks     []Check
	cfg        *config.Config
	configPath string
	columns    int
	term       Terminal
}

// NewChecker creates a checker for cfg, read from configPath ("" for
// defaults), laid out on a terminal of the given width.
func NewChecker(cfg *config.Config, configPath string, columns int, term Terminal) *Checker {
	c := &Checker{
		cfg:        cfg,
		configPath: configPath,
		columns:    columns,
		term:       term,
	}
	c.registerChecks()
	return c
}

// add registers a single check.
func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{
		Name:     name,
		Category: category,
		Fn:       fn,
	})
}

// Names lists the registered checks in run order.
func (c *Checker) Names() []string {
	names := make([]string, len(c.checks))
	for i, ch := range c.checks {
		names[i] = ch.Name
	}
	return names
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	return c.run(ctx, func(Check) bool { return true })
}

// RunCategory runs only the checks matching the given category.
func (c *Checker) RunCategory(ctx context.Context, category string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Category == category })
}

// RunNamed runs the single check called name.
func (c *Checker) RunNamed(ctx context.Context, name string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Name == name })
}

func (c *Checker) run(ctx context.Context, keep func(Check) bool) *Report {
	start := time.Now()
	var results []CheckResult

	for _, ch := range c.checks {
		if !keep(ch) {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, CheckResult{
				Name:     ch.Name,
				Category: ch.Category,
				Status:   StatusFail,
				Message:  "context cancelled",
			})
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		r.Duration = time.Since(t)
		r.Name = ch.Name
		r.Category = ch.Category
		results = append(results, r)
	}

	r := buildReport(results, time.Since(start))
	r.Layout = c.layout()
	return r
}

func (c *Checker) layout() Layout {
	return Layout{
		Columns:       c.columns,
		Tabs:          len(c.cfg.Routes),
		ViewportWidth: float64(c.columns) * c.cfg.Bar.ColumnPixels,
		CellWidth:     c.cellWidth(),
		BarHeight:     c.cfg.Bar.Height,
		CurveWidth:    c.cfg.Bar.Curve.Width,
		CurveHeight:   c.cfg.Bar.Curve.Height,
		MarkerSize:    c.cfg.Bar.MarkerSize,
	}
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
