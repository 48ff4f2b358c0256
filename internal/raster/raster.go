// Package raster fills bar outlines into pixel grids: coarse masks for the
// terminal and full-colour images for export.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/Dallionking/notchbar/internal/geometry"
)

// coverage is the minimum alpha for a mask pixel to count as filled.
const coverage = 0x80

// Document wraps path data in a standalone SVG of the given view size.
func Document(p geometry.PathSpec, width, height float64, fill string) string {
	if fill == "" {
		fill = "#000000"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`, p.String(), fill)
	b.WriteString("</svg>\n")
	return b.String()
}

func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}

// Fill rasterises p, laid out in a viewW x viewH coordinate space, onto a new
// w x h RGBA image.
func Fill(p geometry.PathSpec, viewW, viewH float64, w, h int, fill color.Color) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || viewW <= 0 || viewH <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	doc := Document(p, viewW, viewH, hex(fill))
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parsing outline svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}

// Scaled renders at factor times the requested size and downsamples with
// bilinear filtering, which smooths the notch edges in exported images.
func Scaled(p geometry.PathSpec, viewW, viewH float64, w, h, factor int, fill color.Color) (*image.RGBA, error) {
	if factor <= 1 {
		return Fill(p, viewW, viewH, w, h, fill)
	}
	big, err := Fill(p, viewW, viewH, w*factor, h*factor, fill)
	if err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), big, big.Bounds(), draw.Over, nil)
	return out, nil
}

// Mask is a boolean coverage grid.
type Mask struct {
	W, H int
	bits []bool
}

// At reports whether (x, y) is filled. Out-of-range points are empty.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Rasterize fills p into a w x h coverage mask.
func Rasterize(p geometry.PathSpec, viewW, viewH float64, w, h int) (*Mask, error) {
	img, err := Fill(p, viewW, viewH, w, h, color.White)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	m := &Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if img.RGBAAt(x, y).A >= coverage {
				m.bits[y*m.W+x] = true
			}
		}
	}
	return m, nil
}

// WriteSVG writes the outline as an SVG document.
func WriteSVG(w io.Writer, p geometry.PathSpec, viewW, viewH float64, fill string) error {
	if _, err := io.WriteString(w, Document(p, viewW, viewH, fill)); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// ParseColor parses a hex colour such as "#4fc1ff".
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return c, nil
}

func hex(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
