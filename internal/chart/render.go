package chart

import (
	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/stats"
)

// Render draws chart k of r on a new SVG surface. width is the container
// width for the wide charts; ratio is the device pixel ratio.
func Render(k Kind, r stats.Report, o Options, width, ratio float64) (*canvas.SVG, error) {
	var (
		vp   canvas.Viewport
		draw func(canvas.Surface)
	)
	switch k {
	case KindDonut:
		vp = DonutViewport(ratio)
		draw = NewDonut(vp, r.Slices, o).Draw
	case KindMood:
		o.KeepZero = true
		vp = DonutViewport(ratio)
		draw = NewDonut(vp, r.EmotionSlices, o).Draw
	case KindBars:
		vp = BarsViewport(width, ratio)
		draw = NewTimeline(vp, r.Daily, r.Groups, o).Draw
	case KindWeekday:
		vp = BarsViewport(width, ratio)
		draw = NewWeekday(vp, r.Weekday, r.Groups, o).Draw
	case KindMoodWeek:
		vp = BarsViewport(width, ratio)
		draw = NewWeekday(vp, r.EmotionWeekday, r.EmotionGroups, o).Draw
	case KindHeat:
		vp = HeatmapViewport(width, ratio)
		draw = NewHeatmap(vp, r.Daily, o).Draw
	default:
		_, err := ParseKind(string(k))
		return nil, err
	}
	svg := canvas.NewSVG(vp)
	draw(svg)
	return svg, nil
}
