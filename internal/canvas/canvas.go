// Package canvas is the 2D drawing surface the dial and chart renderers draw
// on. Renderers only see the Surface interface; SVG writes a document and
// Recorder keeps the primitives in memory for inspection.
package canvas

import "math"

// Anchor is the horizontal text alignment.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is the vertical text alignment.
type Baseline int

const (
	BaselineMiddle Baseline = iota
	BaselineTop
)

// TextStyle describes how a label is drawn.
type TextStyle struct {
	Color    string
	Size     float64
	Bold     bool
	Anchor   Anchor
	Baseline Baseline
}

// Surface receives drawing commands in CSS units. Angles are radians, 0 on
// the positive x axis, increasing clockwise (y grows downward).
type Surface interface {
	FillRect(x, y, w, h float64, color string)
	// FillSector fills the ring sector between radii inner and outer from
	// angle start to end. inner == 0 yields a pie wedge.
	FillSector(cx, cy, inner, outer, start, end float64, color string)
	StrokeArc(cx, cy, r, start, end, width float64, color string)
	FillCircle(cx, cy, r float64, color string)
	StrokeCircle(cx, cy, r, width float64, color string)
	Line(x1, y1, x2, y2, width float64, color string)
	Text(x, y float64, s string, style TextStyle)
}

// Viewport is a drawing area in CSS units plus the device pixel ratio.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// Ratio returns the pixel ratio, at least 1.
func (v Viewport) Ratio() float64 {
	if v.PixelRatio < 1 || math.IsNaN(v.PixelRatio) || math.IsInf(v.PixelRatio, 0) {
		return 1
	}
	return v.PixelRatio
}

// BufferSize returns the device pixel buffer: ceil(css size × ratio).
func (v Viewport) BufferSize() (int, int) {
	r := v.Ratio()
	return int(math.Ceil(v.Width * r)), int(math.Ceil(v.Height * r))
}

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// Top is the canvas angle of 12 o'clock.
const Top = -math.Pi / 2

// Polar returns the point at angle a on the circle (cx, cy, r).
func Polar(cx, cy, r, a float64) (float64, float64) {
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}
