// Package stats aggregates day entries into per-theme and per-group totals
// over date ranges, and derives the KPIs and mood statistics shown in reports.
package stats

import (
	"fmt"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// Group is one reporting bucket: a theme or a category.
type Group struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Grouping maps a theme to the bucket its minutes roll up into.
type Grouping struct {
	Name  string
	Key   func(model.Theme) string
	Label func(model.Theme) string
}

// ByTheme keys every theme by its id.
var ByTheme = Grouping{
	Name:  "theme",
	Key:   func(t model.Theme) string { return t.ID },
	Label: func(t model.Theme) string { return t.Name },
}

// ByCategory keys themes by their category; a blank category collapses into model.DefaultCategory.
var ByCategory = Grouping{
	Name:  "category",
	Key:   func(t model.Theme) string { return t.CategoryOrDefault() },
	Label: func(t model.Theme) string { return t.CategoryOrDefault() },
}

// GroupingFor resolves "theme" or "category".
func GroupingFor(name string) (Grouping, error) {
	switch name {
	case "", "theme":
		return ByTheme, nil
	case "category":
		return ByCategory, nil
	}
	return Grouping{}, fmt.Errorf("unknown grouping %q: want theme or category", name)
}

// Groups lists the buckets in theme order. When several themes share a key
// the first one encountered gives the bucket its color (first-match wins).
func Groups(themes []model.Theme, g Grouping) []Group {
	seen := make(map[string]bool, len(themes))
	out := make([]Group, 0, len(themes))
	for _, t := range themes {
		key := g.Key(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Group{Key: key, Name: g.Label(t), Color: t.Color})
	}
	return out
}

// Hidden is a set of group keys excluded from a render.
type Hidden map[string]bool

// NewHidden builds a set from keys.
func NewHidden(keys ...string) Hidden {
	h := make(Hidden, len(keys))
	for _, k := range keys {
		h[k] = true
	}
	return h
}

// Total sums the minutes of the non-hidden keys of by.
func (h Hidden) Total(by map[string]int) int {
	total := 0
	for k, v := range by {
		if !h[k] {
			total += v
		}
	}
	return total
}
