package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/health"
)

var (
	doctorCheck    string
	doctorCategory string
	doctorColumns  int
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config, layout, and terminal problems",
	Long: `Run diagnostic checks for the tab bar.

Checks are grouped into categories:
  config    - config file, validation, route icons, initial route
  layout    - cell width, notch and marker fit at the current width
  terminal  - tty, colour profile, glyph widths

Use --category to run only a specific group, or --check to run a single
named check. Exits non-zero when any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cols, tty := terminalColumns()
		if doctorColumns > 0 {
			cols = doctorColumns
		}

		checker := health.NewChecker(config.Get(), config.Path(), cols, health.Terminal{
			IsTTY:   tty,
			Profile: termenv.NewOutput(cmd.OutOrStdout()).Profile,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var report *health.Report
		switch {
		case doctorCheck != "":
			report = checker.RunNamed(ctx, doctorCheck)
		case doctorCategory != "":
			report = checker.RunCategory(ctx, doctorCategory)
		default:
			report = checker.RunAll(ctx)
		}
		if report.Total == 0 {
			return fmt.Errorf("no checks matched; available: %v", checker.Names())
		}

		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
		if !report.Healthy {
			return fmt.Errorf("%d check(s) failed", report.Failed)
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorCheck, "check", "", "run a specific named check")
	doctorCmd.Flags().StringVar(&doctorCategory, "category", "", "run checks in a category: config, layout, or terminal")
	doctorCmd.Flags().IntVar(&doctorColumns, "columns", 0, "lay out for this many columns (default is the terminal width)")
	rootCmd.AddCommand(doctorCmd)
}
