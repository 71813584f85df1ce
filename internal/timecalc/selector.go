package timecalc

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// SelectorKind distinguishes the three range selector forms.
type SelectorKind int

const (
	SelectAll SelectorKind = iota
	SelectThisMonth
	SelectLastDays
)

// DefaultLastDays is used when a "last N days" selector carries no usable N.
const DefaultLastDays = 30

// Selector is a stats range: "all", "this-month" or the last N days ending today.
type Selector struct {
	Kind SelectorKind
	Days int
}

// ParseSelector parses "all", "this-month" or a positive integer.
func ParseSelector(s string) (Selector, error) {
	switch s {
	case "all":
		return Selector{Kind: SelectAll}, nil
	case "this-month":
		return Selector{Kind: SelectThisMonth}, nil
	case "":
		return Selector{Kind: SelectLastDays, Days: DefaultLastDays}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Selector{}, fmt.Errorf("invalid range %q: want all, this-month or a positive day count", s)
	}
	return Selector{Kind: SelectLastDays, Days: n}, nil
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectAll:
		return "all"
	case SelectThisMonth:
		return "this-month"
	}
	return strconv.Itoa(s.days())
}

func (s Selector) days() int {
	if s.Days <= 0 {
		return DefaultLastDays
	}
	return s.Days
}

// windowStart returns the first ISO date of the window. ok is false when the
// window is empty because there is no data at all.
func (s Selector) windowStart(keys []string, today time.Time) (string, bool) {
	if len(keys) == 0 {
		return "", false
	}
	switch s.Kind {
	case SelectAll:
		return keys[0], true
	case SelectThisMonth:
		return ISO(StartOfMonth(today)), true
	}
	return ISO(AddDays(today, -s.days()+1)), true
}

// sortedKeys returns the valid ISO date keys in ascending order.
func sortedKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if model.ValidDate(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// SparseDates returns the stored dates that fall in the window ending today.
func SparseDates(s Selector, keys []string, today time.Time) []string {
	keys = sortedKeys(keys)
	start, ok := s.windowStart(keys, today)
	if !ok {
		return []string{}
	}
	end := ISO(today)
	out := []string{}
	for _, k := range keys {
		if k >= start && k <= end {
			out = append(out, k)
		}
	}
	return out
}

// ContinuousDates returns every calendar date from the window start to today,
// inclusive. It is empty when there is no stored data at all.
func ContinuousDates(s Selector, keys []string, today time.Time) []string {
	keys = sortedKeys(keys)
	startISO, ok := s.windowStart(keys, today)
	if !ok {
		return []string{}
	}
	start, err := ParseISO(startISO, today.Location())
	if err != nil {
		return []string{}
	}
	end := StartOfDay(today)
	out := []string{}
	for d := start; !d.After(end); d = AddDays(d, 1) {
		out = append(out, ISO(d))
	}
	return out
}
