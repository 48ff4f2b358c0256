// Package geometry computes tab cell layout and the notched outline of the
// curved tab bar. Everything here is a pure function of its arguments.
package geometry

// Curve describes the notch cut into the bar beneath the focused tab.
type Curve struct {
	Width  float64 // total horizontal span of the notch
	Height float64 // depth of the notch floor below the baseline
}

// DefaultCurve is the notch used when no configuration overrides it.
var DefaultCurve = Curve{Width: 120, Height: 38}

// CellWidth returns the width of one tab cell. A non-positive viewport or
// tab count yields 0 so callers can lay out a zero-size bar until a real
// measurement arrives.
func CellWidth(viewportWidth float64, count int) float64 {
	if count <= 0 || viewportWidth <= 0 {
		return 0
	}
	return viewportWidth / float64(count)
}

// ClampIndex forces i into [0, count-1]. With no tabs it returns 0.
func ClampIndex(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

// Coordinate returns the horizontal focus coordinate (centre of the cell)
// for tab index i. The index is clamped first so the marker never leaves
// the bar.
func Coordinate(i, count int, cellWidth float64) float64 {
	i = ClampIndex(i, count)
	return float64(i)*cellWidth + cellWidth/2
}

// MarkerOffset is the left edge of a cell-wide marker centred on the focus
// coordinate x.
func MarkerOffset(x, cellWidth float64) float64 {
	return x - cellWidth/2
}
