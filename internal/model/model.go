// Package model defines the persisted shapes shared by every component.
package model

import (
	"errors"
	"sort"
)

var (
	// ErrUnknownTheme is returned when an operation names a theme id that is not in the list.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidDate is returned for dates that are not ISO YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)

// DefaultCategory is the bucket used when a theme has no category.
const DefaultCategory = "Autre"

// Theme is a user-defined category against which time is allocated.
type Theme struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color    string `json:"color" yaml:"color"`
	Category string `json:"category" yaml:"category"`
}

// CategoryOrDefault returns the theme's category, or DefaultCategory when blank.
func (t Theme) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// Pebble is one discrete unit of allocated minutes tied to a theme and a day.
type Pebble struct {
	ID      string `json:"id" yaml:"id"`
	ThemeID string `json:"themeId" yaml:"themeId"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// TotalMinutes sums the minutes of pebbles.
func TotalMinutes(pebbles []Pebble) int {
	sum := 0
	for _, p := range pebbles {
		sum += p.Minutes
	}
	return sum
}

// DayEntry holds all allocations, the note and the mood of one calendar date.
type DayEntry struct {
	Pebbles []Pebble `json:"pebbles" yaml:"pebbles"`
	Note    string   `json:"note" yaml:"note"`
	Emotion string   `json:"emotion" yaml:"emotion"`
}

// Entries maps ISO dates (YYYY-MM-DD) to day entries.
type Entries map[string]*DayEntry

// Dates returns the stored dates in ascending order.
func (e Entries) Dates() []string {
	out := make([]string, 0, len(e))
	for d := range e {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Pebbles returns the allocations of date, or nil when the date was never touched.
func (e Entries) Pebbles(date string) []Pebble {
	if de, ok := e[date]; ok && de != nil {
		return de.Pebbles
	}
	return nil
}

// Clone returns a deep copy.
func (e Entries) Clone() Entries {
	out := make(Entries, len(e))
	for d, de := range e {
		if de == nil {
			continue
		}
		cp := *de
		cp.Pebbles = append([]Pebble(nil), de.Pebbles...)
		out[d] = &cp
	}
	return out
}
