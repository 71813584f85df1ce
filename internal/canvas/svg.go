package canvas

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVG is a Surface that renders to an SVG document. The document is sized to
// the device pixel buffer and every command goes through a scale transform
// matching the pixel ratio, so callers draw in CSS units.
type SVG struct {
	vp   Viewport
	body strings.Builder
}

// NewSVG returns an empty SVG surface for vp.
func NewSVG(vp Viewport) *SVG {
	return &SVG{vp: vp}
}

// Viewport returns the surface geometry.
func (s *SVG) Viewport() Viewport { return s.vp }

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func (s *SVG) FillRect(x, y, w, h float64, color string) {
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), html.EscapeString(color))
}

func (s *SVG) FillSector(cx, cy, inner, outer, start, end float64, color string) {
	if end-start >= FullTurn-1e-9 {
		// A single arc cannot describe a full turn: split it in two halves.
		mid := start + math.Pi
		s.FillSector(cx, cy, inner, outer, start, mid, color)
		s.FillSector(cx, cy, inner, outer, mid, start+FullTurn, color)
		return
	}
	if end <= start {
		return
	}
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	ox0, oy0 := Polar(cx, cy, outer, start)
	ox1, oy1 := Polar(cx, cy, outer, end)
	var d strings.Builder
	fmt.Fprintf(&d, "M%s,%s A%s,%s 0 %d 1 %s,%s", num(ox0), num(oy0), num(outer), num(outer), large, num(ox1), num(oy1))
	if inner > 0 {
		ix1, iy1 := Polar(cx, cy, inner, end)
		ix0, iy0 := Polar(cx, cy, inner, start)
		fmt.Fprintf(&d, " L%s,%s A%s,%s 0 %d 0 %s,%s Z", num(ix1), num(iy1), num(inner), num(inner), large, num(ix0), num(iy0))
	} else {
		fmt.Fprintf(&d, " L%s,%s Z", num(cx), num(cy))
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="%s"/>`+"\n", d.String(), html.EscapeString(color))
}

func (s *SVG) StrokeArc(cx, cy, r, start, end, width float64, color string) {
	if end-start >= FullTurn-1e-9 {
		s.StrokeCircle(cx, cy, r, width, color)
		return
	}
	if end <= start {
		return
	}
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	x0, y0 := Polar(cx, cy, r, start)
	x1, y1 := Polar(cx, cy, r, end)
	fmt.Fprintf(&s.body, `<path d="M%s,%s A%s,%s 0 %d 1 %s,%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
		num(x0), num(y0), num(r), num(r), large, num(x1), num(y1), html.EscapeString(color), num(width))
}

func (s *SVG) FillCircle(cx, cy, r float64, color string) {
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n", num(cx), num(cy), num(r), html.EscapeString(color))
}

func (s *SVG) StrokeCircle(cx, cy, r, width float64, color string) {
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(cx), num(cy), num(r), html.EscapeString(color), num(width))
}

func (s *SVG) Line(x1, y1, x2, y2, width float64, color string) {
	fmt.Fprintf(&s.body, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), html.EscapeString(color), num(width))
}

func (s *SVG) Text(x, y float64, text string, st TextStyle) {
	anchor := "start"
	switch st.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	baseline := "middle"
	if st.Baseline == BaselineTop {
		baseline = "hanging"
	}
	weight := "normal"
	if st.Bold {
		weight = "600"
	}
	size := st.Size
	if size <= 0 {
		size = 11
	}
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" fill="%s" font-family="system-ui, sans-serif" font-size="%s" font-weight="%s" text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
		num(x), num(y), html.EscapeString(st.Color), num(size), weight, anchor, baseline, html.EscapeString(text))
}

// WriteTo writes the complete SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	bw, bh := s.vp.BufferSize()
	var doc strings.Builder
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", bw, bh, bw, bh)
	fmt.Fprintf(&doc, `<g transform="scale(%s)">`+"\n", num(s.vp.Ratio()))
	doc.WriteString(s.body.String())
	doc.WriteString("</g>\n</svg>\n")
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

// String returns the SVG document.
func (s *SVG) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
