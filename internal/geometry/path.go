package geometry

import (
	"strconv"
	"strings"
)

// Op is a single path command.
type Op byte

const (
	OpMove       Op = 'M'
	OpHorizontal Op = 'H'
	OpVertical   Op = 'V'
	OpCubic      Op = 'C'
	OpClose      Op = 'Z'
)

// Point is a 2D position in bar pixels, y growing downward.
type Point struct {
	X, Y float64
}

// Segment is one command of an outline. Args holds the operands in SVG
// order: one value for H/V, one point for M, three points for C.
type Segment struct {
	Op   Op
	Args []float64
}

// Cubic is a cubic Bézier from Start to End with two control points.
type Cubic struct {
	Start, C1, C2, End Point
}

// PathSpec is a closed outline made of absolute path commands.
type PathSpec struct {
	Segments []Segment
}

// OutlinePath builds the bar outline for focus coordinate x: a flat top edge
// across barWidth with a symmetric notch of span curveWidth and depth
// curveHeight centred on x. The notch is not re-centred near the edges; when
// it crosses 0 or barWidth the outline simply runs past the bar and the fill
// clips it.
func OutlinePath(x, barWidth, barHeight, curveWidth, curveHeight float64) PathSpec {
	half := curveWidth / 2
	quarter := curveWidth / 4

	return PathSpec{Segments: []Segment{
		{Op: OpMove, Args: []float64{0, 0}},
		{Op: OpHorizontal, Args: []float64{x - half}},
		{Op: OpCubic, Args: []float64{
			x - quarter, 0,
			x - quarter, curveHeight,
			x, curveHeight,
		}},
		{Op: OpCubic, Args: []float64{
			x + quarter, curveHeight,
			x + quarter, 0,
			x + half, 0,
		}},
		{Op: OpHorizontal, Args: []float64{barWidth}},
		{Op: OpVertical, Args: []float64{barHeight}},
		{Op: OpHorizontal, Args: []float64{0}},
		{Op: OpClose},
	}}
}

// Curves returns the cubic segments of the path with their absolute start
// points resolved.
func (p PathSpec) Curves() []Cubic {
	var (
		out []Cubic
		cur Point
	)
	for _, s := range p.Segments {
		switch s.Op {
		case OpMove:
			cur = Point{s.Args[0], s.Args[1]}
		case OpHorizontal:
			cur.X = s.Args[0]
		case OpVertical:
			cur.Y = s.Args[0]
		case OpCubic:
			c := Cubic{
				Start: cur,
				C1:    Point{s.Args[0], s.Args[1]},
				C2:    Point{s.Args[2], s.Args[3]},
				End:   Point{s.Args[4], s.Args[5]},
			}
			out = append(out, c)
			cur = c.End
		}
	}
	return out
}

// LeftCurve is the descent into the notch, RightCurve the climb out of it.
// Both are zero-valued when the path has no notch.
func (p PathSpec) LeftCurve() Cubic {
	cs := p.Curves()
	if len(cs) < 1 {
		return Cubic{}
	}
	return cs[0]
}

func (p PathSpec) RightCurve() Cubic {
	cs := p.Curves()
	if len(cs) < 2 {
		return Cubic{}
	}
	return cs[1]
}

// At evaluates the curve at parameter t in [0, 1].
func (c Cubic) At(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.Start.X + b*c.C1.X + d*c.C2.X + e*c.End.X,
		Y: a*c.Start.Y + b*c.C1.Y + d*c.C2.Y + e*c.End.Y,
	}
}

// Tangent returns the derivative of the curve at t.
func (c Cubic) Tangent(t float64) Point {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	d := 3 * t * t
	return Point{
		X: a*(c.C1.X-c.Start.X) + b*(c.C2.X-c.C1.X) + d*(c.End.X-c.C2.X),
		Y: a*(c.C1.Y-c.Start.Y) + b*(c.C2.Y-c.C1.Y) + d*(c.End.Y-c.C2.Y),
	}
}

// String renders the path as SVG path data.
func (p PathSpec) String() string {
	var b strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Op))
		for j, a := range s.Args {
			switch {
			case j == 0:
				b.WriteByte(' ')
			case s.Op == OpCubic && j%2 == 0:
				b.WriteString(", ")
			default:
				b.WriteByte(' ')
			}
			b.WriteString(formatNum(a))
		}
	}
	return b.String()
}

// formatNum prints the shortest exact decimal form so equal inputs always
// produce byte-identical path data.
func formatNum(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
