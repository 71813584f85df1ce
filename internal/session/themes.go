package session

import (
	"fmt"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// Themes returns the themes in display order.
func (s *Session) Themes() []model.Theme {
	return append([]model.Theme(nil), s.snap.Themes...)
}

// Theme looks a theme up by id.
func (s *Session) Theme(id string) (model.Theme, bool) {
	i := s.themeIndex(id)
	if i < 0 {
		return model.Theme{}, false
	}
	return s.snap.Themes[i], true
}

// FindTheme resolves ref as an id, then as a case-insensitive name.
func (s *Session) FindTheme(ref string) (model.Theme, error) {
	if t, ok := s.Theme(ref); ok {
		return t, nil
	}
	want := normalizeRef(ref)
	for _, t := range s.snap.Themes {
		if normalizeRef(t.Name) == want {
			return t, nil
		}
	}
	return model.Theme{}, fmt.Errorf("%w %q", model.ErrUnknownTheme, ref)
}

func (s *Session) themeIndex(id string) int {
	for i, t := range s.snap.Themes {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// AddTheme appends a new theme and returns it.
func (s *Session) AddTheme(name, color, category string) model.Theme {
	if name == "" {
		name = "Nouveau thème"
	}
	t := model.Theme{ID: model.NewID(), Name: name, Color: color, Category: category}
	s.snap.Themes = append(s.snap.Themes, t)
	s.changed()
	return t
}

func (s *Session) updateTheme(id string, fn func(*model.Theme)) error {
	i := s.themeIndex(id)
	if i < 0 {
		return fmt.Errorf("%w %q", model.ErrUnknownTheme, id)
	}
	fn(&s.snap.Themes[i])
	s.changed()
	return nil
}

// RenameTheme changes a theme's display name.
func (s *Session) RenameTheme(id, name string) error {
	return s.updateTheme(id, func(t *model.Theme) { t.Name = name })
}

// RecolorTheme changes a theme's color.
func (s *Session) RecolorTheme(id, color string) error {
	return s.updateTheme(id, func(t *model.Theme) { t.Color = color })
}

// RecategorizeTheme changes a theme's category.
func (s *Session) RecategorizeTheme(id, category string) error {
	return s.updateTheme(id, func(t *model.Theme) { t.Category = category })
}

// MoveTheme swaps the theme with its neighbour delta positions away. Moves
// past either end are ignored and report false.
func (s *Session) MoveTheme(id string, delta int) (bool, error) {
	i := s.themeIndex(id)
	if i < 0 {
		return false, fmt.Errorf("%w %q", model.ErrUnknownTheme, id)
	}
	j := i + delta
	if j < 0 || j >= len(s.snap.Themes) {
		return false, nil
	}
	s.snap.Themes[i], s.snap.Themes[j] = s.snap.Themes[j], s.snap.Themes[i]
	s.changed()
	return true, nil
}

// DeleteTheme removes a theme and purges its allocations from every day.
// The new theme list and entries are built first and swapped in together.
func (s *Session) DeleteTheme(id string) (int, error) {
	i := s.themeIndex(id)
	if i < 0 {
		return 0, fmt.Errorf("%w %q", model.ErrUnknownTheme, id)
	}
	themes := make([]model.Theme, 0, len(s.snap.Themes)-1)
	themes = append(themes, s.snap.Themes[:i]...)
	themes = append(themes, s.snap.Themes[i+1:]...)

	purged := 0
	entries := make(model.Entries, len(s.snap.Entries))
	for date, de := range s.snap.Entries {
		cp := *de
		cp.Pebbles = make([]model.Pebble, 0, len(de.Pebbles))
		for _, p := range de.Pebbles {
			if p.ThemeID == id {
				purged++
				continue
			}
			cp.Pebbles = append(cp.Pebbles, p)
		}
		entries[date] = &cp
	}

	s.snap.Themes = themes
	s.snap.Entries = entries
	s.changed()
	return purged, nil
}
