package chart

import (
	"math"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

const (
	padLeft   = 36.0
	padRight  = 10.0
	padTop    = 10.0
	padBottom = 24.0

	timelineGap   = 2.0
	timelineMinW  = 2.0
	timelineFloor = 60.0
	weekdayGap    = 12.0
	weekdayMinW   = 8.0
	weekdayFloor  = 1.0
	percentScale  = 100.0
	maxXLabels    = 10
)

// Segment is one group's share of a bar.
type Segment struct {
	Key   string
	Color string
	// Value is minutes, or percent of the bar in percent mode.
	Value     float64
	Y, Height float64
}

// Bar is one stacked column.
type Bar struct {
	Label    string
	X, Width float64
	Segments []Segment
}

// Bars is a laid-out stacked bar chart.
type Bars struct {
	Viewport canvas.Viewport
	MaxY     float64
	Bars     []Bar
	Labels   []Label
}

type column struct {
	label string
	by    map[string]int
}

// NewTimeline lays out one bar per day, in order.
func NewTimeline(vp canvas.Viewport, days []stats.Day, groups []stats.Group, o Options) Bars {
	cols := make([]column, len(days))
	for i, d := range days {
		cols[i] = column{label: timecalc.FormatDateEU(d.Date), by: d.By}
	}
	n := math.Max(1, float64(len(days)))
	inner := vp.Width - padLeft - padRight
	bw := math.Max(timelineMinW, inner/n-timelineGap)
	b := stack(vp, cols, groups, o, bw, timelineGap, timelineFloor)

	every := int(math.Ceil(n / maxXLabels))
	for i := 0; i < len(b.Bars); i += every {
		bar := b.Bars[i]
		b.Labels = append(b.Labels, Label{X: bar.X + bar.Width/2, Y: vp.Height - padBottom + 4, Text: bar.Label})
	}
	return b
}

// NewWeekday lays out seven bars, Monday first.
func NewWeekday(vp canvas.Viewport, week [7]map[string]int, groups []stats.Group, o Options) Bars {
	cols := make([]column, 7)
	for i := range week {
		cols[i] = column{label: Weekdays[i], by: week[i]}
	}
	inner := vp.Width - padLeft - padRight
	bw := math.Max(weekdayMinW, inner/7-weekdayGap)
	b := stack(vp, cols, groups, o, bw, weekdayGap, weekdayFloor)
	for _, bar := range b.Bars {
		b.Labels = append(b.Labels, Label{X: bar.X + bar.Width/2, Y: vp.Height - padBottom + 4, Text: bar.Label})
	}
	return b
}

func stack(vp canvas.Viewport, cols []column, groups []stats.Group, o Options, bw, gap, floor float64) Bars {
	maxY := 0.0
	if o.Percent {
		maxY = percentScale
	} else {
		for _, c := range cols {
			maxY = math.Max(maxY, float64(o.Hidden.Total(c.by)))
		}
	}
	maxY = math.Max(floor, maxY)

	innerH := vp.Height - padTop - padBottom
	base := vp.Height - padBottom
	b := Bars{Viewport: vp, MaxY: maxY, Bars: make([]Bar, 0, len(cols))}
	for i, c := range cols {
		bar := Bar{Label: c.label, X: padLeft + float64(i)*(bw+gap), Width: bw}
		dayTotal := float64(o.Hidden.Total(c.by))
		acc := 0.0
		for _, g := range groups {
			if o.hidden(g.Key) {
				continue
			}
			v := float64(c.by[g.Key])
			if o.Percent {
				if dayTotal == 0 {
					v = 0
				} else {
					v = percentScale * v / dayTotal
				}
			}
			h := innerH * v / maxY
			if h <= 0 {
				continue
			}
			bar.Segments = append(bar.Segments, Segment{Key: g.Key, Color: g.Color, Value: v, Y: base - acc - h, Height: h})
			acc += h
		}
		b.Bars = append(b.Bars, bar)
	}
	return b
}

// Draw paints the axis, the stacks and the x labels.
func (b Bars) Draw(s canvas.Surface) {
	w, h := b.Viewport.Width, b.Viewport.Height
	s.Line(padLeft, h-padBottom, w-padRight, h-padBottom, 1, axisColor)
	for _, bar := range b.Bars {
		for _, seg := range bar.Segments {
			s.FillRect(bar.X, seg.Y, bar.Width, seg.Height, seg.Color)
		}
	}
	drawLabels(s, b.Labels, labelStyle(canvas.AnchorMiddle, canvas.BaselineTop))
}
