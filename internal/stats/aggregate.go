package stats

import (
	"sort"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// TotalsByTheme sums one day's allocations per theme id. Every known theme is
// present, at zero when it has no allocation.
func TotalsByTheme(themes []model.Theme, entry *model.DayEntry) map[string]int {
	totals := make(map[string]int, len(themes))
	for _, t := range themes {
		totals[t.ID] = 0
	}
	if entry == nil {
		return totals
	}
	for _, p := range entry.Pebbles {
		totals[p.ThemeID] += p.Minutes
	}
	return totals
}

// DayTotal sums every allocation of a day.
func DayTotal(entry *model.DayEntry) int {
	if entry == nil {
		return 0
	}
	return model.TotalMinutes(entry.Pebbles)
}

type keyer struct {
	byID map[string]model.Theme
	g    Grouping
}

func newKeyer(themes []model.Theme, g Grouping) keyer {
	byID := make(map[string]model.Theme, len(themes))
	for _, t := range themes {
		byID[t.ID] = t
	}
	return keyer{byID: byID, g: g}
}

// key returns the group key of a theme id; ok is false for unknown themes.
func (k keyer) key(themeID string) (string, bool) {
	t, ok := k.byID[themeID]
	if !ok {
		return "", false
	}
	return k.g.Key(t), true
}

func (k keyer) add(into map[string]int, pebbles []model.Pebble) {
	for _, p := range pebbles {
		if key, ok := k.key(p.ThemeID); ok {
			into[key] += p.Minutes
		}
	}
}

// AggregateRange sums allocations over dates per group. Allocations that
// reference a theme no longer in the list are skipped.
func AggregateRange(dates []string, entries model.Entries, themes []model.Theme, g Grouping) map[string]int {
	k := newKeyer(themes, g)
	totals := map[string]int{}
	for _, d := range dates {
		k.add(totals, entries.Pebbles(d))
	}
	return totals
}

// Day is the per-group breakdown of one date.
type Day struct {
	Date string         `json:"date"`
	By   map[string]int `json:"by"`
}

// DailySeries returns one Day per date, zero-filled for every known group.
func DailySeries(dates []string, entries model.Entries, themes []model.Theme, g Grouping) []Day {
	k := newKeyer(themes, g)
	groups := Groups(themes, g)
	out := make([]Day, 0, len(dates))
	for _, d := range dates {
		by := make(map[string]int, len(groups))
		for _, grp := range groups {
			by[grp.Key] = 0
		}
		k.add(by, entries.Pebbles(d))
		out = append(out, Day{Date: d, By: by})
	}
	return out
}

// WeekdaySeries folds days into seven buckets, Monday first.
func WeekdaySeries(days []Day, groups []Group) [7]map[string]int {
	var out [7]map[string]int
	for i := range out {
		out[i] = make(map[string]int, len(groups))
		for _, g := range groups {
			out[i][g.Key] = 0
		}
	}
	for _, d := range days {
		idx, ok := WeekdayOf(d.Date)
		if !ok {
			continue
		}
		for k, v := range d.By {
			out[idx][k] += v
		}
	}
	return out
}

// Slice is one group's share of a total, used by donuts and legends.
type Slice struct {
	Group
	Minutes int `json:"minutes"`
}

// Slices pairs groups with totals in descending-minutes order; ties keep group
// order. Zero slices are dropped unless keepZero is set.
func Slices(groups []Group, totals map[string]int, keepZero bool) []Slice {
	out := make([]Slice, 0, len(groups))
	for _, g := range groups {
		m := totals[g.Key]
		if m <= 0 && !keepZero {
			continue
		}
		out = append(out, Slice{Group: g, Minutes: m})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minutes > out[j].Minutes })
	return out
}
