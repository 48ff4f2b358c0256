package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View and manage notchbar configuration.

When run without subcommands, displays the current configuration summary
and any validation problems.

Subcommands:
  routes   List the configured tabs
  init     Write the default config to notchbar.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		src := styles.Value.Render(config.Path())
		if config.Path() == "" {
			src = styles.Gold("(defaults)")
		}

		fmt.Println(styles.Title.Render("Configuration"))
		fmt.Println()

		fmt.Println(styles.Label.Render("FILE") + "      " + src)
		fmt.Println(styles.Label.Render("ROUTES") + "    " + styles.Value.Render(fmt.Sprintf("%d", len(cfg.Routes))))
		fmt.Println(styles.Label.Render("INITIAL") + "   " + styles.Value.Render(cfg.InitialRoute))
		fmt.Println()

		fmt.Println(styles.Divider(50))
		fmt.Println()

		fmt.Println(styles.Subtitle.Render("Bar"))
		fmt.Printf("  height=%gpx marker=%gpx curve=%gx%gpx\n",
			cfg.Bar.Height, cfg.Bar.MarkerSize, cfg.Bar.Curve.Width, cfg.Bar.Curve.Height)
		fmt.Printf("  cell=%gx%gpx\n", cfg.Bar.ColumnPixels, cfg.Bar.RowPixels)
		fmt.Println()

		fmt.Println(styles.Subtitle.Render("Animation"))
		fmt.Printf("  %s over %s at %d fps\n", cfg.Animation.Easing, cfg.Duration(), cfg.Animation.FPS)
		fmt.Println()

		fmt.Println(styles.Subtitle.Render("Theme"))
		fmt.Printf("  background=%s primary=%s icon=%s active=%s inset=%d\n",
			cfg.Theme.Background, cfg.Theme.Primary, cfg.Theme.Icon, cfg.Theme.ActiveIcon, cfg.Theme.BottomInset)
		fmt.Println()

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Println(styles.Green("valid"))
			return nil
		}
		fmt.Println(styles.Subtitle.Render("Problems"))
		for _, e := range errs {
			fmt.Println("  " + styles.Red("x") + " " + e.Error())
		}
		return fmt.Errorf("config has %d error(s)", len(errs))
	},
}

// --- config routes ---

var configRoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the configured tabs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		fmt.Println(styles.Title.Render("Routes"))
		fmt.Println()

		if len(cfg.Routes) == 0 {
			fmt.Println(styles.Dim("  No routes configured"))
			return nil
		}

		fmt.Printf("  %s  %s  %s  %s\n",
			styles.TableHeader.Width(3).Render("#"),
			styles.TableHeader.Width(12).Render("KEY"),
			styles.TableHeader.Width(10).Render("ICON"),
			styles.TableHeader.Width(20).Render("TITLE"),
		)
		fmt.Println(styles.Divider(53))

		for i, r := range cfg.Routes {
			active := ""
			if r.Key == cfg.InitialRoute {
				active = " " + styles.Cyan("*")
			}
			icon := r.Icon()
			fmt.Printf("  %-3d  %s  %s  %s%s\n",
				i+1,
				styles.Bold(fmt.Sprintf("%-12s", r.Key)),
				styles.Dim(fmt.Sprintf("%s %-8s", icon.Glyph(), icon.String())),
				styles.TruncateWithEllipsis(r.Label(), 20),
				active,
			)
		}

		fmt.Println()
		fmt.Println(styles.Dim("  * = initial route"))
		return nil
	},
}

// --- config init ---

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config to notchbar.json",
	Args:  cobra.MaximumNArgs(1),
	// Works even when the existing file does not parse.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FileName
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}

		data, err := json.MarshalIndent(config.Default(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Println(styles.Green("Wrote") + " " + styles.Value.Render(path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configRoutesCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
