package stats

import (
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

// Report bundles every aggregate the stats views draw from.
type Report struct {
	Range      string            `json:"range"`
	GroupBy    string            `json:"groupBy"`
	Sparse     []string          `json:"sparse"`
	Continuous []string          `json:"continuous"`
	Groups     []Group           `json:"groups"`
	Totals     map[string]int    `json:"totals"`
	Slices     []Slice           `json:"slices"`
	Daily      []Day             `json:"daily"`
	Weekday    [7]map[string]int `json:"weekday"`
	Summary    Summary           `json:"summary"`

	EmotionGroups  []Group           `json:"emotionGroups"`
	EmotionCounts  map[string]int    `json:"emotionCounts"`
	EmotionSlices  []Slice           `json:"emotionSlices"`
	EmotionWeekday [7]map[string]int `json:"emotionWeekday"`
}

// Build computes the report of snap over sel, grouped by g, as seen on today.
func Build(snap model.Snapshot, sel timecalc.Selector, g Grouping, today time.Time) Report {
	keys := snap.Entries.Dates()
	sparse := timecalc.SparseDates(sel, keys, today)
	continuous := timecalc.ContinuousDates(sel, keys, today)
	groups := Groups(snap.Themes, g)
	totals := AggregateRange(sparse, snap.Entries, snap.Themes, g)
	daily := DailySeries(continuous, snap.Entries, snap.Themes, g)

	emoGroups := EmotionGroups(snap.Settings)
	emoCounts := EmotionCounts(sparse, snap.Entries, snap.Emotions)

	return Report{
		Range:          sel.String(),
		GroupBy:        g.Name,
		Sparse:         sparse,
		Continuous:     continuous,
		Groups:         groups,
		Totals:         totals,
		Slices:         Slices(groups, totals, false),
		Daily:          daily,
		Weekday:        WeekdaySeries(daily, groups),
		Summary:        Summarize(continuous, snap.Entries, totals, groups),
		EmotionGroups:  emoGroups,
		EmotionCounts:  emoCounts,
		EmotionSlices:  Slices(emoGroups, emoCounts, true),
		EmotionWeekday: WeekdayEmotions(sparse, snap.Entries, snap.Emotions),
	}
}
