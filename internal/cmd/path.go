package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/raster"
)

var (
	pathWidth       float64
	pathHeight      float64
	pathCount       int
	pathIndex       int
	pathCurveWidth  float64
	pathCurveHeight float64
	pathSVG         bool
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the notched outline as SVG path data",
	Long: `Compute the bar outline for a focused tab and print it as SVG path data.

The bar is --width pixels wide and split into --count equal cells. The
notch is centred on cell --index. Count and curve size default to the
loaded config.

Example:
  notchbar path --width 300 --count 3 --index 1
  M 0 0 H 90 C 120 0, 120 38, 150 38 C 180 38, 180 0, 210 0 H 300 V 64 H 0 Z`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		p, err := outlineFromFlags(cmd, cfg, pathWidth, pathHeight, pathCount, pathIndex)
		if err != nil {
			return err
		}
		if pathSVG {
			return raster.WriteSVG(os.Stdout, p, pathWidth, barHeight(cmd, cfg, pathHeight), cfg.Theme.Primary)
		}
		fmt.Println(p.String())
		return nil
	},
}

func init() {
	pathCmd.Flags().Float64Var(&pathWidth, "width", 360, "viewport width in pixels")
	pathCmd.Flags().Float64Var(&pathHeight, "height", 0, "bar height in pixels (default from config)")
	pathCmd.Flags().IntVar(&pathCount, "count", 0, "number of tabs (default from config)")
	pathCmd.Flags().IntVar(&pathIndex, "index", 0, "focused tab")
	pathCmd.Flags().Float64Var(&pathCurveWidth, "curve-width", 0, "notch width in pixels (default from config)")
	pathCmd.Flags().Float64Var(&pathCurveHeight, "curve-height", 0, "notch depth in pixels (default from config)")
	pathCmd.Flags().BoolVar(&pathSVG, "svg", false, "print a complete SVG document")
	rootCmd.AddCommand(pathCmd)
}

// barHeight picks the --height flag when given, else the config value.
func barHeight(cmd *cobra.Command, cfg *config.Config, flag float64) float64 {
	if cmd.Flags().Changed("height") {
		return flag
	}
	return cfg.Bar.Height
}

// outlineFromFlags builds the outline from the shared geometry flags.
func outlineFromFlags(cmd *cobra.Command, cfg *config.Config, width, height float64, count, index int) (geometry.PathSpec, error) {
	if width <= 0 {
		return geometry.PathSpec{}, fmt.Errorf("--width must be positive, got %g", width)
	}
	if !cmd.Flags().Changed("count") {
		count = len(cfg.Routes)
	}
	if count <= 0 {
		return geometry.PathSpec{}, fmt.Errorf("--count must be positive, got %d", count)
	}

	curve := geometry.Curve{Width: cfg.Bar.Curve.Width, Height: cfg.Bar.Curve.Height}
	if f := cmd.Flags().Lookup("curve-width"); f != nil && f.Changed {
		curve.Width = pathCurveWidth
	}
	if f := cmd.Flags().Lookup("curve-height"); f != nil && f.Changed {
		curve.Height = pathCurveHeight
	}

	cell := geometry.CellWidth(width, count)
	x := geometry.Coordinate(index, count, cell)
	return geometry.OutlinePath(x, width, barHeight(cmd, cfg, height), curve.Width, curve.Height), nil
}
