package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/tui/views"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "notchbar",
	Short: "Curved bottom tab bar for the terminal",
	Long: `notchbar draws a bottom tab bar whose outline carries a smooth notch
under the focused tab, with a floating marker that glides between tabs.

Run without a subcommand to open the interactive navigator. The other
commands print the outline path, render single frames, export images,
and trace the focus animation.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigator("")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the nearest "+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

// loadConfig reads the config once for every command and sets up output.
func loadConfig(cmd *cobra.Command, args []string) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Printf("config loaded from %q with %d routes", config.Path(), len(cfg.Routes))
	return nil
}

// runNavigator validates the loaded config and opens the TUI.
func runNavigator(route string) error {
	cfg := config.Get()
	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "  "+e.Error())
		}
		return fmt.Errorf("config has %d error(s), run 'notchbar doctor' for details", len(errs))
	}

	lf := logFile
	if lf == "" {
		lf = cfg.LogFile
	}
	return views.RunNavigator(cfg, views.RunOptions{
		ConfigPath:   config.Path(),
		InitialRoute: route,
		LogFile:      lf,
	})
}
