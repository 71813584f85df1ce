package model

import "time"

// Snapshot is the full per-user state: what persistence loads and saves and
// what export/import exchange.
type Snapshot struct {
	Version  int     `json:"version,omitempty" yaml:"version,omitempty"`
	User     string  `json:"user,omitempty" yaml:"user,omitempty"`
	Themes   []Theme `json:"themes" yaml:"themes"`
	Entries  Entries `json:"entries" yaml:"entries"`
	Settings `yaml:",inline"`
}

// Normalize applies best-effort defaulting of missing fields and drops entries
// whose key is not a YYYY-MM-DD date. Seed themes are not added here; that
// happens when a session starts with an empty list.
func (s *Snapshot) Normalize() {
	if s.Themes == nil {
		s.Themes = []Theme{}
	}
	if s.Entries == nil {
		s.Entries = Entries{}
	}
	for d, de := range s.Entries {
		if !ValidDate(d) {
			delete(s.Entries, d)
			continue
		}
		if de == nil {
			s.Entries[d] = &DayEntry{Pebbles: []Pebble{}}
			continue
		}
		if de.Pebbles == nil {
			de.Pebbles = []Pebble{}
		}
	}
	s.Settings.Normalize()
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	cp := s
	cp.Themes = append([]Theme(nil), s.Themes...)
	cp.Entries = s.Entries.Clone()
	cp.Settings = s.Settings.Clone()
	return cp
}

// ValidDate reports whether d is a calendar date in YYYY-MM-DD form.
func ValidDate(d string) bool {
	_, err := time.Parse("2006-01-02", d)
	return err == nil
}
