package components

import (
	"math"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Dallionking/notchbar/internal/animate"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/raster"
	"github.com/Dallionking/notchbar/internal/routes"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// Metrics maps bar geometry, which is expressed in pixels, onto terminal
// cells.
type Metrics struct {
	ColumnPixels float64 // pixels per terminal column
	RowPixels    float64 // pixels per terminal row (two half-block sub-rows)
	BarHeight    float64 // outline height in pixels
	MarkerSize   float64 // marker disc diameter in pixels
	Curve        geometry.Curve
}

// DefaultMetrics are used when configuration leaves them unset.
func DefaultMetrics() Metrics {
	return Metrics{
		ColumnPixels: 8,
		RowPixels:    16,
		BarHeight:    64,
		MarkerSize:   40,
		Curve:        geometry.DefaultCurve,
	}
}

// CurvedTabBar is a bottom tab bar whose outline carries a notch under the
// focused tab, with a marker disc floating in the notch. Both follow one
// animated focus coordinate.
//
// The bar never changes its own focus. Clicks are reported through OnSelect
// and the owner answers with SetActive once its navigation state changed.
type CurvedTabBar struct {
	Theme   styles.Theme
	Metrics Metrics

	// OnSelect is invoked once per tab selection with the tab index.
	OnSelect func(index int) tea.Cmd

	// Zones marks each tab cell for mouse hit-testing. Optional.
	Zones *zone.Manager

	routes     []routes.Descriptor
	active     int
	columns    int
	anim       *animate.Animator
	zonePrefix string
}

// NewCurvedTabBar builds a bar for the given routes focused on active.
// The bar has zero width until SetWidth is called.
func NewCurvedTabBar(list []routes.Descriptor, active int, theme styles.Theme, m Metrics, d time.Duration, e animate.Easing) *CurvedTabBar {
	b := &CurvedTabBar{
		Theme:   theme,
		Metrics: m,
		routes:  list,
		active:  geometry.ClampIndex(active, len(list)),
	}
	b.anim = animate.New(b.Coordinate(b.active), d, e)
	return b
}

// WithZones enables mouse hit regions backed by zm.
func (b *CurvedTabBar) WithZones(zm *zone.Manager) *CurvedTabBar {
	b.Zones = zm
	if zm != nil {
		b.zonePrefix = zm.NewPrefix()
	}
	return b
}

// Routes returns the current tab descriptors.
func (b *CurvedTabBar) Routes() []routes.Descriptor { return b.routes }

// Active returns the focused index.
func (b *CurvedTabBar) Active() int { return b.active }

// Columns returns the measured terminal width.
func (b *CurvedTabBar) Columns() int { return b.columns }

// ViewportWidth is the measured width in pixels.
func (b *CurvedTabBar) ViewportWidth() float64 {
	return float64(b.columns) * b.Metrics.ColumnPixels
}

// CellWidth is the width of one tab cell in pixels, derived from the live
// route count.
func (b *CurvedTabBar) CellWidth() float64 {
	return geometry.CellWidth(b.ViewportWidth(), len(b.routes))
}

// Coordinate is the resting focus coordinate of tab i.
func (b *CurvedTabBar) Coordinate(i int) float64 {
	return geometry.Coordinate(i, len(b.routes), b.CellWidth())
}

// SetWidth records a new viewport measurement. The focus snaps to the
// re-measured coordinate; there is nothing meaningful to tween from.
func (b *CurvedTabBar) SetWidth(columns int) {
	if columns < 0 {
		columns = 0
	}
	if columns == b.columns {
		return
	}
	b.columns = columns
	b.anim.Snap(b.Coordinate(b.active))
}

// SetRoutes replaces the tab set. Cell width is recomputed from the new
// count and the focus snaps to its new position.
func (b *CurvedTabBar) SetRoutes(list []routes.Descriptor) {
	b.routes = list
	b.active = geometry.ClampIndex(b.active, len(list))
	b.anim.Snap(b.Coordinate(b.active))
}

// SetTiming swaps the tween length and easing. Any tween in flight is
// settled at its target.
func (b *CurvedTabBar) SetTiming(d time.Duration, e animate.Easing) {
	b.anim = animate.New(b.anim.Target(), d, e)
}

// SetActive moves the focus to index i, clamped to the tab range, and
// retargets the animation toward it.
func (b *CurvedTabBar) SetActive(i int, now time.Time) {
	b.active = geometry.ClampIndex(i, len(b.routes))
	b.anim.Retarget(b.Coordinate(b.active), now)
}

// Frame samples the focus coordinate for one render.
func (b *CurvedTabBar) Frame(now time.Time) animate.Frame {
	return b.anim.Frame(now)
}

// Animating reports whether the focus is still moving.
func (b *CurvedTabBar) Animating(now time.Time) bool {
	return b.anim.Animating(now)
}

// MarkerCenter is the horizontal centre of the marker in pixels.
func (b *CurvedTabBar) MarkerCenter(now time.Time) float64 {
	return b.anim.Value(now)
}

// MarkerOffset is the left edge of the marker's cell-wide frame in pixels.
func (b *CurvedTabBar) MarkerOffset(now time.Time) float64 {
	return geometry.MarkerOffset(b.anim.Value(now), b.CellWidth())
}

// Select reports a tap on tab i. It does not change the focus.
func (b *CurvedTabBar) Select(i int) tea.Cmd {
	if i < 0 || i >= len(b.routes) || b.OnSelect == nil {
		return nil
	}
	return b.OnSelect(i)
}

// CellAt returns the tab index under terminal column x, or -1.
func (b *CurvedTabBar) CellAt(x int) int {
	for i := range b.routes {
		from, to := b.CellSpan(i)
		if x >= from && x < to {
			return i
		}
	}
	return -1
}

// HandleMouse turns a left-button release over a tab cell into a Select.
// Without zones only the column is checked, so callers must route only
// events that fall on the bar's rows.
func (b *CurvedTabBar) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if b.Zones == nil {
		if i := b.CellAt(msg.X); i >= 0 {
			return b.Select(i)
		}
		return nil
	}
	for i := range b.routes {
		if z := b.Zones.Get(b.zoneID(i)); z != nil && z.InBounds(msg) {
			return b.Select(i)
		}
	}
	return nil
}

// Rows is the rendered height in terminal rows.
func (b *CurvedTabBar) Rows() int {
	inset := b.Theme.BottomInset
	if inset < 0 {
		inset = 0
	}
	return b.barRows() + inset
}

func (b *CurvedTabBar) barRows() int {
	if b.Metrics.RowPixels <= 0 {
		return 1
	}
	n := int(math.Ceil(b.Metrics.BarHeight / b.Metrics.RowPixels))
	if n < 2 {
		n = 2
	}
	return n
}

// View renders the bar at now. Outline and marker read the same Frame.
func (b *CurvedTabBar) View(now time.Time) string {
	if b.columns <= 0 || len(b.routes) == 0 || b.Metrics.ColumnPixels <= 0 {
		return ""
	}
	frame := b.anim.Frame(now)

	c := newCanvas(b.columns, b.Rows(), b.Theme.Background)
	b.paintOutline(c, frame.Coordinate)
	b.paintMarker(c, frame.Coordinate)
	b.paintCells(c)

	blocks := make([]string, len(b.routes))
	for i := range b.routes {
		from, to := b.CellSpan(i)
		block := c.renderRange(from, to)
		if b.Zones != nil {
			block = b.Zones.Mark(b.zoneID(i), block)
		}
		blocks[i] = block
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// paintOutline fills the notched outline as half-block glyphs.
func (b *CurvedTabBar) paintOutline(c *canvas, x float64) {
	rows := b.barRows()
	viewW := b.ViewportWidth()
	viewH := float64(rows) * b.Metrics.RowPixels
	path := geometry.OutlinePath(x, viewW, viewH, b.Metrics.Curve.Width, b.Metrics.Curve.Height)

	mask, err := raster.Rasterize(path, viewW, viewH, c.w, rows*2)
	if err != nil {
		// Leave the background showing; the cells still render.
		return
	}

	bg, fill := b.Theme.Background, b.Theme.Primary
	for y := 0; y < rows; y++ {
		for col := 0; col < c.w; col++ {
			top, bottom := mask.At(col, 2*y), mask.At(col, 2*y+1)
			switch {
			case top && bottom:
				c.set(col, y, " ", fill, fill)
			case top:
				c.set(col, y, "▀", fill, bg)
			case bottom:
				c.set(col, y, "▄", fill, bg)
			}
		}
	}
	for y := rows; y < c.h; y++ {
		for col := 0; col < c.w; col++ {
			c.set(col, y, " ", fill, fill)
		}
	}
}

// paintMarker draws the disc centred on x in the top row, inside the notch.
func (b *CurvedTabBar) paintMarker(c *canvas, x float64) {
	cp := b.Metrics.ColumnPixels
	width := int(math.Round(b.Metrics.MarkerSize / cp))
	if width < 3 {
		width = 3
	}
	if width%2 == 0 {
		width++
	}
	center := int(math.Floor(x / cp))
	left := center - width/2
	right := left + width - 1

	glyph := b.routes[b.active].Icon().Glyph()
	bg, fill := b.Theme.Background, b.Theme.Primary

	c.set(left, 0, "◖", fill, bg)
	for col := left + 1; col < right; col++ {
		c.set(col, 0, " ", b.Theme.ActiveIcon, fill)
	}
	c.set(center, 0, glyph, b.Theme.ActiveIcon, fill)
	c.set(right, 0, "◗", fill, bg)
}

// paintCells draws an icon for every inactive tab on the last outline row.
// The active cell stays empty; the marker stands in for it.
func (b *CurvedTabBar) paintCells(c *canvas) {
	row := b.barRows() - 1
	cp := b.Metrics.ColumnPixels
	for i, r := range b.routes {
		if i == b.active {
			continue
		}
		col := int(math.Floor(b.Coordinate(i) / cp))
		c.set(col, row, r.Icon().Glyph(), b.Theme.Icon, b.Theme.Primary)
	}
}

// CellSpan returns the column range [from, to) covered by tab i.
func (b *CurvedTabBar) CellSpan(i int) (int, int) {
	n := len(b.routes)
	if n == 0 {
		return 0, 0
	}
	per := float64(b.columns) / float64(n)
	from := int(math.Round(float64(i) * per))
	to := int(math.Round(float64(i+1) * per))
	if i == n-1 {
		to = b.columns
	}
	return from, to
}

func (b *CurvedTabBar) zoneID(i int) string {
	return b.zonePrefix + "tab-" + strconv.Itoa(i)
}
