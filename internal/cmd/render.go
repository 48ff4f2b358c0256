package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/tui/views"
)

var (
	renderColumns int
	renderRoute   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one frame of the tab bar",
	Long: `Render the tab bar at rest on a route and print it with the tab titles
underneath. Useful for screenshots and for checking a theme without
opening the navigator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if errs := config.Validate(cfg); len(errs) > 0 {
			return fmt.Errorf("invalid config: %s", errs[0].Error())
		}
		cols := renderColumns
		if cols <= 0 {
			cols, _ = terminalColumns()
		}
		out := views.RenderOnce(cfg, cols, renderRoute)
		if out == "" {
			return fmt.Errorf("nothing to render")
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderColumns, "columns", 0, "width in terminal columns (default is the terminal width)")
	renderCmd.Flags().StringVar(&renderRoute, "route", "", "focused route (default is initialRoute)")
	rootCmd.AddCommand(renderCmd)
}
