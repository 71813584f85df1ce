package model

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for themes and pebbles.
func NewID() string {
	return uuid.NewString()
}

// DefaultThemes returns the seed set used on first use.
func DefaultThemes() []Theme {
	return []Theme{
		{ID: NewID(), Name: "Travail manuel", Icon: "🧰", Color: "#c98b6b", Category: "pro"},
		{ID: NewID(), Name: "Enfants", Icon: "🧒", Color: "#f2a65a", Category: "famille"},
		{ID: NewID(), Name: "Création", Icon: "🎨", Color: "#8bb2b2", Category: "créatif"},
		{ID: NewID(), Name: "Repos", Icon: "🌿", Color: "#9aa380", Category: "soin"},
		{ID: NewID(), Name: "Présence", Icon: "💞", Color: "#c7a0c5", Category: "relation"},
		{ID: NewID(), Name: "Administratif", Icon: "🗂️", Color: "#a5a2a1", Category: "tâches"},
	}
}

// DefaultEmotions returns the default mood glyphs and their colors.
func DefaultEmotions() ([]string, map[string]string) {
	return []string{"😊", "😌", "🤗", "😴", "🌧️", "🌞"}, map[string]string{
		"😊":  "#f6b94e",
		"😌":  "#8bb2d9",
		"🤗":  "#c7a0c5",
		"😴":  "#9aa380",
		"🌧️": "#7e9aa6",
		"🌞":  "#f29f67",
	}
}
