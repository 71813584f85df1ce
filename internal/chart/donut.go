package chart

import (
	"math"
	"sort"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/stats"
)

const (
	donutMargin  = 10.0
	holeThinnest = 8.0
	holeThickest = 28.0
	holeMax      = 0.72
	holeSpan     = 0.22
)

// Wedge is one donut slice.
type Wedge struct {
	stats.Slice
	Start, End float64
}

// Donut is a laid-out donut chart.
type Donut struct {
	CX, CY, Radius float64
	// HoleRatio is the inner radius as a fraction of Radius.
	HoleRatio float64
	RingWidth float64
	Total     int
	Wedges    []Wedge
}

// HoleRatio maps a ring thickness to the donut's inner radius ratio: 0.72 at
// thickness 8 and below, 0.5 at 28 and above.
func HoleRatio(thickness float64) float64 {
	if thickness <= 0 {
		thickness = model.DefaultRingThickness
	}
	t := math.Max(0, math.Min(1, (thickness-holeThinnest)/(holeThickest-holeThinnest)))
	return holeMax - holeSpan*t
}

// NewDonut lays out slices in descending order clockwise from 12 o'clock.
func NewDonut(vp canvas.Viewport, slices []stats.Slice, o Options) Donut {
	visible := make([]stats.Slice, 0, len(slices))
	total := 0
	for _, s := range slices {
		if o.hidden(s.Key) {
			continue
		}
		if s.Minutes <= 0 && !o.KeepZero {
			continue
		}
		visible = append(visible, s)
		if s.Minutes > 0 {
			total += s.Minutes
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Minutes > visible[j].Minutes })

	handle := o.HandleDiameter
	if handle <= 0 {
		handle = model.DefaultHandleDiameter
	}
	cx, cy := vp.Width/2, vp.Height/2
	d := Donut{
		CX: cx, CY: cy,
		Radius:    math.Max(0, math.Min(cx, cy)-donutMargin),
		HoleRatio: HoleRatio(o.Thickness),
		RingWidth: math.Max(0.5, math.Min(3, handle/12)),
		Total:     total,
		Wedges:    make([]Wedge, 0, len(visible)),
	}
	denom := float64(total)
	if denom == 0 {
		denom = 1
	}
	a := canvas.Top
	for _, s := range visible {
		sweep := 0.0
		if s.Minutes > 0 {
			sweep = canvas.FullTurn * float64(s.Minutes) / denom
		}
		d.Wedges = append(d.Wedges, Wedge{Slice: s, Start: a, End: a + sweep})
		a += sweep
	}
	return d
}

// Draw paints the wedges as ring sectors and the soft inner ring.
func (d Donut) Draw(s canvas.Surface) {
	inner := d.Radius * d.HoleRatio
	for _, w := range d.Wedges {
		if w.End <= w.Start {
			continue
		}
		color := w.Color
		if color == "" {
			color = "#cccccc"
		}
		s.FillSector(d.CX, d.CY, inner, d.Radius, w.Start, w.End, color)
	}
	ring := d.HoleRatio + (1-d.HoleRatio)*0.06
	s.StrokeCircle(d.CX, d.CY, d.Radius*ring, d.RingWidth, ringColor)
}
