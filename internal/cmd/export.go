package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/raster"
)

var (
	exportOut    string
	exportFormat string
	exportWidth  float64
	exportHeight float64
	exportCount  int
	exportIndex  int
	exportScale  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the outline to a PNG or SVG file",
	Long: `Export the notched outline for a focused tab as an image.

The format follows the --out extension unless --format is given. PNG
output is rendered at --scale times the pixel size and filtered down.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOut == "" {
			return fmt.Errorf("--out is required")
		}
		cfg := config.Get()

		p, err := outlineFromFlags(cmd, cfg, exportWidth, exportHeight, exportCount, exportIndex)
		if err != nil {
			return err
		}
		h := barHeight(cmd, cfg, exportHeight)

		format, err := exportFormatFor(exportOut, exportFormat)
		if err != nil {
			return err
		}
		if err := writeExport(exportOut, format, p, exportWidth, h, exportScale, cfg.Theme.Primary); err != nil {
			return err
		}

		fmt.Println("wrote " + exportOut)
		return nil
	},
}

// exportFormatFor returns the explicit format, or the one implied by the
// file extension. Only png and svg are accepted.
func exportFormatFor(out, flag string) (string, error) {
	format := strings.ToLower(flag)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	switch format {
	case "png", "svg":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want png or svg)", format)
	}
}

// writeExport encodes the outline in memory and writes it to out, so a
// failed export never leaves a partial file behind.
func writeExport(out, format string, p geometry.PathSpec, w, h float64, scale int, fill string) error {
	var buf bytes.Buffer
	switch format {
	case "svg":
		if err := raster.WriteSVG(&buf, p, w, h, fill); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
	case "png":
		c, err := raster.ParseColor(fill)
		if err != nil {
			return fmt.Errorf("theme.primary: %w", err)
		}
		img, err := raster.Scaled(p, w, h, int(w), int(h), scale, c)
		if err != nil {
			return fmt.Errorf("rasterizing: %w", err)
		}
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want png or svg)", format)
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "png or svg (default from the file extension)")
	exportCmd.Flags().Float64Var(&exportWidth, "width", 360, "viewport width in pixels")
	exportCmd.Flags().Float64Var(&exportHeight, "height", 0, "bar height in pixels (default from config)")
	exportCmd.Flags().IntVar(&exportCount, "count", 0, "number of tabs (default from config)")
	exportCmd.Flags().IntVar(&exportIndex, "index", 0, "focused tab")
	exportCmd.Flags().IntVar(&exportScale, "scale", 4, "supersampling factor for png")
	exportCmd.Flags().Float64Var(&pathCurveWidth, "curve-width", 0, "notch width in pixels (default from config)")
	exportCmd.Flags().Float64Var(&pathCurveHeight, "curve-height", 0, "notch depth in pixels (default from config)")
	rootCmd.AddCommand(exportCmd)
}
