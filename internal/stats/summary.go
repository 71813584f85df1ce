package stats

import (
	"math"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

// Summary holds the headline figures of a stats range.
type Summary struct {
	TotalMinutes int    `json:"totalMinutes"`
	Days         int    `json:"days"`
	ActiveDays   int    `json:"activeDays"`
	AvgPerDay    int    `json:"avgPerDay"`
	TopName      string `json:"topName"`
	TopShare     int    `json:"topShare"`
}

// Summarize computes KPIs. Totals come from the sparse dates, day counts and
// the daily average from the continuous ones.
func Summarize(continuous []string, entries model.Entries, totals map[string]int, groups []Group) Summary {
	s := Summary{Days: len(continuous)}
	for _, v := range totals {
		s.TotalMinutes += v
	}
	for _, d := range continuous {
		if len(entries.Pebbles(d)) > 0 {
			s.ActiveDays++
		}
	}
	if s.Days > 0 {
		s.AvgPerDay = int(math.Round(float64(s.TotalMinutes) / float64(s.Days)))
	}
	if top := Slices(groups, totals, false); len(top) > 0 {
		s.TopName = top[0].Name
		if s.TotalMinutes > 0 {
			s.TopShare = Percent(top[0].Minutes, s.TotalMinutes)
		}
	}
	return s
}

// Percent returns the rounded share of part in total, 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// WeekdayOf returns the Monday-first weekday index of an ISO date.
func WeekdayOf(iso string) (int, bool) {
	t, err := timecalc.ParseISO(iso, time.UTC)
	if err != nil {
		return 0, false
	}
	return timecalc.WeekdayIndex(t), true
}
