package stats

import (
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

// StripRadius is how many days the week strip shows on each side of the selected date.
const StripRadius = 2

// StripDay is one cell of the week strip.
type StripDay struct {
	Date     string  `json:"date"`
	Selected bool    `json:"selected"`
	Total    int     `json:"total"`
	Segments []Slice `json:"segments"`
}

// WeekStrip returns the days around selected, each with its non-zero per-theme
// segments in theme order.
func WeekStrip(selected time.Time, entries model.Entries, themes []model.Theme) []StripDay {
	out := make([]StripDay, 0, 2*StripRadius+1)
	for i := -StripRadius; i <= StripRadius; i++ {
		date := timecalc.ISO(timecalc.AddDays(selected, i))
		totals := TotalsByTheme(themes, entries[date])
		day := StripDay{Date: date, Selected: i == 0, Segments: []Slice{}}
		for _, t := range themes {
			v := totals[t.ID]
			if v <= 0 {
				continue
			}
			day.Segments = append(day.Segments, Slice{Group: Group{Key: t.ID, Name: t.Name, Color: t.Color}, Minutes: v})
			day.Total += v
		}
		out = append(out, day)
	}
	return out
}
