package model

import "math"

// Appearance and palette defaults.
const (
	DefaultPebbleColor    = "#edeae4"
	DefaultRingThickness  = 16.0
	DefaultHandleDiameter = 16.0
	DefaultUser           = "Seb"
	// SnapshotVersion is the version tag written into exported documents.
	SnapshotVersion = 3
)

// DefaultSizes is the historical pebble size list.
var DefaultSizes = []int{30, 60}

// Settings is the per-user appearance and unit configuration.
type Settings struct {
	Sizes           []int             `json:"sizes" yaml:"sizes"`
	Emotions        []string          `json:"emotions" yaml:"emotions"`
	EmotionColors   map[string]string `json:"emotionColors" yaml:"emotionColors"`
	PebbleColorTray string            `json:"pebbleColorTray" yaml:"pebbleColorTray"`
	PebbleColorChip string            `json:"pebbleColorChip" yaml:"pebbleColorChip"`
	RingThickness   float64           `json:"ringThickness" yaml:"ringThickness"`
	HandleDiameter  float64           `json:"handleDiameter" yaml:"handleDiameter"`

	// LegacyPebbleColor is the single pebble color of older documents. It is
	// only read: Normalize moves it into the tray and chip colors.
	LegacyPebbleColor string `json:"pebbleColor,omitempty" yaml:"pebbleColor,omitempty"`
}

// DefaultSettings returns settings filled with the built-in defaults.
func DefaultSettings() Settings {
	emotions, colors := DefaultEmotions()
	return Settings{
		Sizes:           append([]int(nil), DefaultSizes...),
		Emotions:        emotions,
		EmotionColors:   colors,
		PebbleColorTray: DefaultPebbleColor,
		PebbleColorChip: DefaultPebbleColor,
		RingThickness:   DefaultRingThickness,
		HandleDiameter:  DefaultHandleDiameter,
	}
}

// Normalize fills zero or invalid fields with defaults.
func (s *Settings) Normalize() {
	if len(s.Sizes) == 0 {
		s.Sizes = append([]int(nil), DefaultSizes...)
	}
	if len(s.Emotions) == 0 {
		s.Emotions, s.EmotionColors = DefaultEmotions()
	}
	if s.EmotionColors == nil {
		s.EmotionColors = map[string]string{}
	}
	if s.PebbleColorTray == "" {
		s.PebbleColorTray = s.LegacyPebbleColor
	}
	if s.PebbleColorChip == "" {
		s.PebbleColorChip = s.LegacyPebbleColor
	}
	s.LegacyPebbleColor = ""
	if s.PebbleColorTray == "" {
		s.PebbleColorTray = DefaultPebbleColor
	}
	if s.PebbleColorChip == "" {
		s.PebbleColorChip = DefaultPebbleColor
	}
	if !positiveFinite(s.RingThickness) {
		s.RingThickness = DefaultRingThickness
	}
	if !positiveFinite(s.HandleDiameter) {
		s.HandleDiameter = DefaultHandleDiameter
	}
}

// EmotionColor returns the configured color of emotion, falling back to the
// default palette and finally to a neutral grey.
func (s Settings) EmotionColor(emotion string) string {
	if c, ok := s.EmotionColors[emotion]; ok && c != "" {
		return c
	}
	_, defaults := DefaultEmotions()
	if c, ok := defaults[emotion]; ok {
		return c
	}
	return "#cccccc"
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	cp := s
	cp.Sizes = append([]int(nil), s.Sizes...)
	cp.Emotions = append([]string(nil), s.Emotions...)
	cp.EmotionColors = make(map[string]string, len(s.EmotionColors))
	for k, v := range s.EmotionColors {
		cp.EmotionColors[k] = v
	}
	return cp
}
