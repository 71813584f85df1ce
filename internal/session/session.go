// Package session holds the in-memory state of one user: themes, day entries
// and settings. Every mutation goes through a Session method and is reported
// to an optional change notifier with a fresh snapshot, which is how the
// debounced writer learns what to persist.
package session

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
	"github.com/Tiliavir/temps-vecu/internal/units"
)

// Session is the explicit per-user store. It is not safe for concurrent use.
type Session struct {
	user   string
	snap   model.Snapshot
	policy units.Policy
	notify func(model.Snapshot)
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithPolicy sets the discretization policy. Defaults to a fixed 15 minute step.
func WithPolicy(p units.Policy) Option {
	return func(s *Session) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithNotifier registers fn to receive a snapshot after every mutation.
func WithNotifier(fn func(model.Snapshot)) Option {
	return func(s *Session) {
		s.notify = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New starts a session over snap. Missing fields are defaulted and an empty
// theme list is seeded with the default themes.
func New(user string, snap model.Snapshot, opts ...Option) *Session {
	if user == "" {
		user = model.DefaultUser
	}
	s := &Session{
		user:   user,
		snap:   snap.Clone(),
		policy: units.NewFixedStep(units.Step),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snap.Normalize()
	if len(s.snap.Themes) == 0 {
		s.snap.Themes = model.DefaultThemes()
		s.logger.Debug("seeded default themes", "user", user)
		s.changed()
	}
	return s
}

// User returns the session owner.
func (s *Session) User() string { return s.user }

// Policy returns the active discretization policy.
func (s *Session) Policy() units.Policy { return s.policy }

// Snapshot returns a deep copy of the full state, tagged with version and user.
func (s *Session) Snapshot() model.Snapshot {
	cp := s.snap.Clone()
	cp.Version = model.SnapshotVersion
	cp.User = s.user
	return cp
}

// Settings returns a copy of the current settings.
func (s *Session) Settings() model.Settings { return s.snap.Settings.Clone() }

// Entries returns a deep copy of all day entries.
func (s *Session) Entries() model.Entries { return s.snap.Entries.Clone() }

// Replace swaps the whole state for snap in one step.
func (s *Session) Replace(snap model.Snapshot) {
	next := snap.Clone()
	next.Normalize()
	if len(next.Themes) == 0 {
		next.Themes = model.DefaultThemes()
	}
	s.snap = next
	s.changed()
}

func (s *Session) changed() {
	if s.notify != nil {
		s.notify(s.Snapshot())
	}
}

func validDate(date string) error {
	_, err := timecalc.ParseISO(date, time.Local)
	return err
}

// Entry returns the day entry of date, creating an empty one on first access.
// The returned value is a copy.
func (s *Session) Entry(date string) (model.DayEntry, error) {
	de, err := s.entry(date)
	if err != nil {
		return model.DayEntry{}, err
	}
	cp := *de
	cp.Pebbles = append([]model.Pebble(nil), de.Pebbles...)
	return cp, nil
}

func (s *Session) entry(date string) (*model.DayEntry, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	de, ok := s.snap.Entries[date]
	if !ok || de == nil {
		de = &model.DayEntry{Pebbles: []model.Pebble{}}
		s.snap.Entries[date] = de
	}
	return de, nil
}

// SetThemeTotal replaces every allocation of themeID on date with the
// decomposition of minutes under the active policy. Other themes are untouched.
func (s *Session) SetThemeTotal(date, themeID string, minutes float64) ([]model.Pebble, error) {
	if _, ok := s.Theme(themeID); !ok {
		return nil, fmt.Errorf("%w %q", model.ErrUnknownTheme, themeID)
	}
	de, err := s.entry(date)
	if err != nil {
		return nil, err
	}
	parts := s.policy.Decompose(minutes)
	next := make([]model.Pebble, 0, len(de.Pebbles)+len(parts))
	for _, p := range de.Pebbles {
		if p.ThemeID != themeID {
			next = append(next, p)
		}
	}
	added := make([]model.Pebble, 0, len(parts))
	for _, m := range parts {
		added = append(added, model.Pebble{ID: model.NewID(), ThemeID: themeID, Minutes: m})
	}
	de.Pebbles = append(next, added...)
	s.changed()
	return added, nil
}

// SetNote stores the free-text note of date.
func (s *Session) SetNote(date, note string) error {
	de, err := s.entry(date)
	if err != nil {
		return err
	}
	de.Note = note
	s.changed()
	return nil
}

// ToggleEmotion selects emotion for date, or clears it when it is already
// selected. It returns the resulting emotion.
func (s *Session) ToggleEmotion(date, emotion string) (string, error) {
	de, err := s.entry(date)
	if err != nil {
		return "", err
	}
	if de.Emotion == emotion {
		de.Emotion = ""
	} else {
		de.Emotion = emotion
	}
	s.changed()
	return de.Emotion, nil
}

// SetRingThickness updates the dial/donut ring thickness; non-positive values reset to the default.
func (s *Session) SetRingThickness(px float64) {
	if px <= 0 {
		px = model.DefaultRingThickness
	}
	s.snap.RingThickness = px
	s.changed()
}

// SetHandleDiameter updates the dial knob diameter; non-positive values reset to the default.
func (s *Session) SetHandleDiameter(px float64) {
	if px <= 0 {
		px = model.DefaultHandleDiameter
	}
	s.snap.HandleDiameter = px
	s.changed()
}

// SetPebbleColors sets the tray and chip colors; empty values reset to the default.
func (s *Session) SetPebbleColors(tray, chip string) {
	if tray == "" {
		tray = model.DefaultPebbleColor
	}
	if chip == "" {
		chip = model.DefaultPebbleColor
	}
	s.snap.PebbleColorTray = tray
	s.snap.PebbleColorChip = chip
	s.changed()
}

// SetSizes stores the declared pebble sizes.
func (s *Session) SetSizes(sizes []int) error {
	if _, err := units.NewSizeList(sizes); err != nil {
		return err
	}
	s.snap.Sizes = append([]int(nil), sizes...)
	s.changed()
	return nil
}

func normalizeRef(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}
