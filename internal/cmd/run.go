package cmd

import (
	"github.com/spf13/cobra"
)

var runRoute string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive navigator",
	Long: `Open the full-screen navigator with the curved tab bar at the bottom.

Keys:
  left/right, h/l   previous / next tab
  tab               next tab, wrapping
  1-9               jump to a tab
  up/down, j/k      scroll the page
  q, ctrl+c         quit

Tabs can also be clicked. When the config was read from a file, edits to
that file are applied while the navigator is running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNavigator(runRoute)
	},
}

func init() {
	runCmd.Flags().StringVar(&runRoute, "route", "", "route to open on (overrides initialRoute)")
	rootCmd.AddCommand(runCmd)
}
