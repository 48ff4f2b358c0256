package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		count int
		want  float64
	}{
		{"three tabs", 300, 3, 100},
		{"four tabs", 360, 4, 90},
		{"three tabs 360", 360, 3, 120},
		{"zero width", 0, 3, 0},
		{"negative width", -20, 3, 0},
		{"no tabs", 300, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellWidth(tt.width, tt.count); got != tt.want {
				t.Errorf("CellWidth(%v, %d) = %v, want %v", tt.width, tt.count, got, tt.want)
			}
		})
	}
}

func TestCoordinate(t *testing.T) {
	cell := CellWidth(300, 3)
	for i := 0; i < 3; i++ {
		want := float64(i)*cell + cell/2
		if got := Coordinate(i, 3, cell); got != want {
			t.Errorf("Coordinate(%d) = %v, want %v", i, got, want)
		}
	}
	if got := Coordinate(2, 3, cell); got != 250 {
		t.Errorf("Coordinate(2) = %v, want 250", got)
	}
}

func TestCoordinateClampsIndex(t *testing.T) {
	cell := 100.0
	if got := Coordinate(-4, 3, cell); got != 50 {
		t.Errorf("Coordinate(-4) = %v, want 50", got)
	}
	if got := Coordinate(7, 3, cell); got != 250 {
		t.Errorf("Coordinate(7) = %v, want 250", got)
	}
}

func TestMarkerOffset(t *testing.T) {
	if got := MarkerOffset(250, 100); got != 200 {
		t.Errorf("MarkerOffset = %v, want 200", got)
	}
}

func TestOutlinePathIsDeterministic(t *testing.T) {
	a := OutlinePath(150, 300, 64, 120, 38)
	b := OutlinePath(150, 300, 64, 120, 38)
	if a.String() != b.String() {
		t.Fatalf("path differs for identical inputs:\n%s\n%s", a, b)
	}
	want := "M 0 0 H 90 C 120 0, 120 38, 150 38 C 180 38, 180 0, 210 0 H 300 V 64 H 0 Z"
	if got := a.String(); got != want {
		t.Fatalf("path data:\n got %s\nwant %s", got, want)
	}
}

func TestOutlinePathIsSymmetric(t *testing.T) {
	for _, x := range []float64{0, 37.5, 50, 150, 250, 299} {
		p := OutlinePath(x, 300, 64, 120, 38)
		l, r := p.LeftCurve(), p.RightCurve()

		mirror := func(pt Point) Point { return Point{X: 2*x - pt.X, Y: pt.Y} }
		pairs := [][2]Point{
			{l.Start, r.End},
			{l.C1, r.C2},
			{l.C2, r.C1},
			{l.End, r.Start},
		}
		for i, pr := range pairs {
			m := mirror(pr[0])
			if !near(m.X, pr[1].X) || !near(m.Y, pr[1].Y) {
				t.Errorf("x=%v pair %d: mirror %v, got %v", x, i, m, pr[1])
			}
		}
		for _, s := range []float64{0.1, 0.3, 0.5, 0.8} {
			lp := mirror(l.At(s))
			rp := r.At(1 - s)
			if !near(lp.X, rp.X) || !near(lp.Y, rp.Y) {
				t.Errorf("x=%v t=%v: left mirrored %v, right %v", x, s, lp, rp)
			}
		}
	}
}

func TestOutlinePathSmoothness(t *testing.T) {
	p := OutlinePath(150, 300, 64, 120, 38)
	l, r := p.LeftCurve(), p.RightCurve()

	// Flat where the notch meets the baseline and at its floor.
	for name, tan := range map[string]Point{
		"left start":  l.Tangent(0),
		"left end":    l.Tangent(1),
		"right start": r.Tangent(0),
		"right end":   r.Tangent(1),
	} {
		if !near(tan.Y, 0) || tan.X <= 0 {
			t.Errorf("%s tangent = %+v, want horizontal", name, tan)
		}
	}
	lt, rt := l.Tangent(1), r.Tangent(0)
	if !near(lt.X, rt.X) || !near(lt.Y, rt.Y) {
		t.Errorf("floor tangents differ: %+v vs %+v", lt, rt)
	}
	if floor := l.At(1); floor.X != 150 || floor.Y != 38 {
		t.Errorf("notch floor = %+v, want (150, 38)", floor)
	}
	if start := l.Start; start.X != 90 || start.Y != 0 {
		t.Errorf("notch start = %+v, want (90, 0)", start)
	}
}

func TestOutlinePathEdgeClipsWithoutRecentering(t *testing.T) {
	p := OutlinePath(20, 300, 64, 120, 38)
	if got := p.LeftCurve().Start.X; got != -40 {
		t.Errorf("left splice = %v, want -40", got)
	}
	if got := p.LeftCurve().End.X; got != 20 {
		t.Errorf("notch floor x = %v, want 20", got)
	}
}
