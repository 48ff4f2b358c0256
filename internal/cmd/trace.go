package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/notchbar/internal/animate"
	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

var (
	traceWidth  float64
	traceCount  int
	traceFrom   int
	traceTo     int
	traceThen   int
	traceAt     int
	traceStep   int
	traceEasing string
	traceJSON   bool
)

// traceSample is one sampled animation frame.
type traceSample struct {
	TimeMs       int     `json:"timeMs"`
	Coordinate   float64 `json:"coordinate"`
	MarkerOffset float64 `json:"markerOffset"`
	Animating    bool    `json:"animating"`
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Sample the focus animation between two tabs",
	Long: `Move the focus from --from to --to and print the focus coordinate at
every --step milliseconds until it settles.

With --then, the focus is sent on to a third tab --at milliseconds into
the first move. The second tween starts from wherever the first one was,
so the trace stays continuous.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		count := traceCount
		if !cmd.Flags().Changed("count") {
			count = len(cfg.Routes)
		}
		if count <= 0 || traceWidth <= 0 {
			return fmt.Errorf("--count and --width must be positive")
		}
		if traceStep <= 0 {
			return fmt.Errorf("--step must be positive")
		}

		name := cfg.Animation.Easing
		if traceEasing != "" {
			name = traceEasing
		}
		easing, err := animate.ParseEasing(name)
		if err != nil {
			return err
		}

		samples := sampleTrace(traceWidth, count, traceFrom, traceTo, traceThen,
			time.Duration(traceAt)*time.Millisecond,
			time.Duration(traceStep)*time.Millisecond,
			cfg.Duration(), easing)

		if traceJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(samples)
		}

		fmt.Println(styles.TableHeader.Render(fmt.Sprintf("%8s %12s %12s", "MS", "FOCUS X", "MARKER")))
		for _, s := range samples {
			line := fmt.Sprintf("%8d %12.2f %12.2f", s.TimeMs, s.Coordinate, s.MarkerOffset)
			if !s.Animating {
				line = styles.Dim(line)
			}
			fmt.Println(line)
		}
		return nil
	},
}

// sampleTrace runs an Animator over a fixed clock. then < 0 disables the
// second retarget.
func sampleTrace(width float64, count, from, to, then int, at, step, d time.Duration, e animate.Easing) []traceSample {
	cell := geometry.CellWidth(width, count)
	coord := func(i int) float64 { return geometry.Coordinate(i, count, cell) }

	start := time.Unix(0, 0)
	a := animate.New(coord(from), d, e)
	a.Retarget(coord(to), start)

	end := d
	retargeted := then < 0
	if !retargeted {
		end = at + d
	}

	var out []traceSample
	for t := time.Duration(0); ; t += step {
		if !retargeted && t >= at {
			a.Retarget(coord(then), start.Add(at))
			retargeted = true
		}
		now := start.Add(t)
		f := a.Frame(now)
		out = append(out, traceSample{
			TimeMs:       int(t / time.Millisecond),
			Coordinate:   f.Coordinate,
			MarkerOffset: geometry.MarkerOffset(f.Coordinate, cell),
			Animating:    f.Animating,
		})
		if t >= end {
			break
		}
	}
	return out
}

func init() {
	traceCmd.Flags().Float64Var(&traceWidth, "width", 360, "viewport width in pixels")
	traceCmd.Flags().IntVar(&traceCount, "count", 0, "number of tabs (default from config)")
	traceCmd.Flags().IntVar(&traceFrom, "from", 0, "tab the focus starts on")
	traceCmd.Flags().IntVar(&traceTo, "to", 2, "tab the focus moves to")
	traceCmd.Flags().IntVar(&traceThen, "then", -1, "tab to retarget to mid-flight (-1 for none)")
	traceCmd.Flags().IntVar(&traceAt, "at", 150, "milliseconds into the move when --then fires")
	traceCmd.Flags().IntVar(&traceStep, "step", 16, "sample interval in milliseconds")
	traceCmd.Flags().StringVar(&traceEasing, "easing", "", "easing curve (default from config)")
	traceCmd.Flags().BoolVar(&traceJSON, "json", false, "print samples as JSON")
	rootCmd.AddCommand(traceCmd)
}
