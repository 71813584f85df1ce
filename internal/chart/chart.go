// Package chart lays out and draws the statistics charts. Each chart is built
// from aggregated data into a layout value, which then draws itself on any
// canvas.Surface. Nothing here touches session state.
package chart

import (
	"fmt"
	"math"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/stats"
)

const (
	// Accent is the heatmap's full-intensity color.
	Accent = "#6a7c6f"

	labelColor = "rgba(0,0,0,0.55)"
	axisColor  = "rgba(0,0,0,0.1)"
	ringColor  = "rgba(0,0,0,0.10)"
	labelSize  = 11.0

	defaultWidth = 640.0
	minWidth     = 360.0
	maxWidth     = 900.0
	barsHeight   = 280.0
	heatHeight   = 220.0
	donutSize    = 360.0
)

// Weekdays are the Monday-first axis labels.
var Weekdays = [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

var months = [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."}

// Kind names a chart.
type Kind string

const (
	KindDonut    Kind = "donut"
	KindBars     Kind = "bars"
	KindWeekday  Kind = "weekday"
	KindHeat     Kind = "heat"
	KindMood     Kind = "mood"
	KindMoodWeek Kind = "moodweek"
)

// Kinds lists every chart in menu order.
var Kinds = []Kind{KindDonut, KindBars, KindWeekday, KindHeat, KindMood, KindMoodWeek}

// ParseKind validates a chart name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart %q", s)
}

// Options are the display toggles shared by every chart.
type Options struct {
	// Hidden groups are treated as zero for both scaling and marks.
	Hidden stats.Hidden
	// Percent normalizes each stacked bar to its own total.
	Percent bool
	// KeepZero lays out zero-minute donut slices as empty placeholders.
	KeepZero bool

	Thickness      float64
	HandleDiameter float64
}

// OptionsFrom fills the appearance fields from settings.
func OptionsFrom(s model.Settings) Options {
	return Options{Thickness: s.RingThickness, HandleDiameter: s.HandleDiameter}
}

func (o Options) hidden(key string) bool { return o.Hidden[key] }

// Label is a positioned piece of text.
type Label struct {
	X, Y float64
	Text string
}

// ClampWidth bounds a container width to the chart range; zero picks the default.
func ClampWidth(w float64) float64 {
	if w <= 0 {
		w = defaultWidth
	}
	return math.Min(maxWidth, math.Max(minWidth, w))
}

// BarsViewport sizes a bar chart for a container of width w.
func BarsViewport(w, ratio float64) canvas.Viewport {
	return canvas.Viewport{Width: ClampWidth(w), Height: barsHeight, PixelRatio: ratio}
}

// HeatmapViewport sizes the heatmap for a container of width w.
func HeatmapViewport(w, ratio float64) canvas.Viewport {
	return canvas.Viewport{Width: ClampWidth(w), Height: heatHeight, PixelRatio: ratio}
}

// DonutViewport is the fixed donut size.
func DonutViewport(ratio float64) canvas.Viewport {
	return canvas.Viewport{Width: donutSize, Height: donutSize, PixelRatio: ratio}
}

func drawLabels(s canvas.Surface, labels []Label, st canvas.TextStyle) {
	for _, l := range labels {
		s.Text(l.X, l.Y, l.Text, st)
	}
}

func labelStyle(anchor canvas.Anchor, baseline canvas.Baseline) canvas.TextStyle {
	return canvas.TextStyle{Color: labelColor, Size: labelSize, Anchor: anchor, Baseline: baseline}
}
