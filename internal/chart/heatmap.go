package chart

import (
	"math"

	"github.com/Tiliavir/temps-vecu/internal/canvas"
	"github.com/Tiliavir/temps-vecu/internal/palette"
	"github.com/Tiliavir/temps-vecu/internal/stats"
)

const (
	heatPadLeft   = 28.0
	heatPadRight  = 8.0
	heatPadTop    = 18.0
	heatPadBottom = 22.0
	heatGap       = 2.0
	heatMinCellW  = 6.0
	heatMaxFloor  = 30
	// MinIntensity keeps empty days visible.
	MinIntensity = 0.15
)

// Cell is one day of the heatmap.
type Cell struct {
	Date      string
	Total     int
	Col, Row  int
	X, Y      float64
	W, H      float64
	Intensity float64
	Color     string
}

// Heatmap is a laid-out calendar heatmap: one column per week, one row per weekday.
type Heatmap struct {
	Max         int
	Cols        int
	Cells       []Cell
	RowLabels   []Label
	MonthLabels []Label
}

// Intensity maps a day total to [MinIntensity, 1] relative to max.
func Intensity(total, max int) float64 {
	t := 0.0
	if max > 0 {
		t = math.Min(1, float64(total)/float64(max))
	}
	return MinIntensity + (1-MinIntensity)*t
}

// NewHeatmap lays out days, which are expected to be consecutive dates.
func NewHeatmap(vp canvas.Viewport, days []stats.Day, o Options) Heatmap {
	totals := make([]int, len(days))
	maxV := heatMaxFloor
	for i, d := range days {
		totals[i] = o.Hidden.Total(d.By)
		if totals[i] > maxV {
			maxV = totals[i]
		}
	}

	type slot struct {
		idx, col, row int
	}
	slots := make([]slot, 0, len(days))
	cols := 0
	for i, d := range days {
		row, ok := stats.WeekdayOf(d.Date)
		if !ok {
			continue
		}
		if cols == 0 || row == 0 {
			cols++
		}
		slots = append(slots, slot{idx: i, col: cols - 1, row: row})
	}

	innerW := vp.Width - heatPadLeft - heatPadRight
	innerH := vp.Height - heatPadTop - heatPadBottom
	cellW := math.Max(heatMinCellW, math.Floor(innerW/math.Max(1, float64(cols)))-heatGap)
	cellH := math.Floor(innerH/7) - heatGap

	h := Heatmap{Max: maxV, Cols: cols, Cells: make([]Cell, 0, len(slots))}
	for r, name := range Weekdays {
		h.RowLabels = append(h.RowLabels, Label{X: heatPadLeft - 6, Y: heatPadTop + float64(r)*(cellH+heatGap) + cellH/2, Text: name})
	}
	lastCol := -1
	for _, sl := range slots {
		d := days[sl.idx]
		in := Intensity(totals[sl.idx], maxV)
		x := heatPadLeft + float64(sl.col)*(cellW+heatGap)
		h.Cells = append(h.Cells, Cell{
			Date:      d.Date,
			Total:     totals[sl.idx],
			Col:       sl.col,
			Row:       sl.row,
			X:         x,
			Y:         heatPadTop + float64(sl.row)*(cellH+heatGap),
			W:         cellW,
			H:         cellH,
			Intensity: in,
			Color:     palette.Mix(palette.White, Accent, in),
		})
		if sl.col != lastCol {
			lastCol = sl.col
			if label, ok := monthLabel(d.Date); ok {
				h.MonthLabels = append(h.MonthLabels, Label{X: x + cellW/2, Y: 2, Text: label})
			}
		}
	}
	return h
}

// monthLabel names the month of a week column whose first date falls in the
// first seven days of the month.
func monthLabel(iso string) (string, bool) {
	if len(iso) != 10 {
		return "", false
	}
	day := int(iso[8]-'0')*10 + int(iso[9]-'0')
	month := int(iso[5]-'0')*10 + int(iso[6]-'0')
	if day < 1 || day > 7 || month < 1 || month > 12 {
		return "", false
	}
	return months[month-1], true
}

// Draw paints the weekday labels, the cells and the month labels.
func (h Heatmap) Draw(s canvas.Surface) {
	drawLabels(s, h.RowLabels, labelStyle(canvas.AnchorEnd, canvas.BaselineMiddle))
	for _, c := range h.Cells {
		s.FillRect(c.X, c.Y, c.W, c.H, c.Color)
	}
	drawLabels(s, h.MonthLabels, labelStyle(canvas.AnchorMiddle, canvas.BaselineTop))
}
