package transfer_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/transfer"
)

func current() model.Snapshot {
	s := model.Snapshot{
		Themes:  []model.Theme{{ID: "R", Name: "Repos", Color: "#9aa380", Category: "Perso"}},
		Entries: model.Entries{"2024-01-10": {Pebbles: []model.Pebble{{ID: "p", ThemeID: "R", Minutes: 15}}, Emotion: "😊"}},
	}
	s.Normalize()
	return s
}

func TestExportJSONFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, transfer.Export(&buf, "Seb", current(), transfer.JSON))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, k := range []string{"version", "user", "themes", "entries", "sizes", "emotions", "emotionColors",
		"pebbleColorTray", "pebbleColorChip", "ringThickness", "handleDiameter"} {
		assert.Contains(t, raw, k)
	}
	assert.Equal(t, float64(3), raw["version"])
	assert.Equal(t, "Seb", raw["user"])
	assert.NotContains(t, raw, "pebbleColor")
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []transfer.Format{transfer.JSON, transfer.YAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, transfer.Export(&buf, "Seb", current(), f))

			doc, err := transfer.Import(&buf, f)
			require.NoError(t, err)
			require.NotNil(t, doc.Version)
			assert.Equal(t, 3, *doc.Version)

			got := doc.Apply(model.Snapshot{})
			assert.Equal(t, current().Themes, got.Themes)
			assert.Equal(t, current().Entries, got.Entries)
			assert.Equal(t, current().Settings, got.Settings)
		})
	}
}

func TestImportRejectsNonObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		f    transfer.Format
	}{
		{"json array", `[1, 2]`, transfer.JSON},
		{"json string", `"hello"`, transfer.JSON},
		{"json null", `null`, transfer.JSON},
		{"yaml list", "- a\n- b\n", transfer.YAML},
		{"yaml scalar", "just text\n", transfer.YAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transfer.Import(strings.NewReader(tt.in), tt.f)
			assert.True(t, errors.Is(err, transfer.ErrNotObject), "got %v", err)
		})
	}
}

func TestImportMalformed(t *testing.T) {
	_, err := transfer.Import(strings.NewReader(`{"themes": [`), transfer.JSON)
	require.Error(t, err)
	assert.False(t, errors.Is(err, transfer.ErrNotObject))

	_, err = transfer.Import(strings.NewReader(`{"themes": "nope"}`), transfer.JSON)
	assert.Error(t, err)
}

func TestApplyKeepsAbsentFields(t *testing.T) {
	cur := current()
	cur.RingThickness = 24
	doc, err := transfer.Import(strings.NewReader(`{"handleDiameter": 20, "sizes": []}`), transfer.JSON)
	require.NoError(t, err)

	got := doc.Apply(cur)
	assert.Equal(t, cur.Themes, got.Themes)
	assert.Equal(t, cur.Entries, got.Entries)
	assert.Equal(t, 24.0, got.RingThickness)
	assert.Equal(t, 20.0, got.HandleDiameter)
	assert.Equal(t, cur.Sizes, got.Sizes, "an empty size list is ignored")
}

func TestApplyDropsMalformedDates(t *testing.T) {
	doc, err := transfer.Import(strings.NewReader(
		`{"entries": {"2023-13-01": {"note": "x"}, "2024-01-09": {"note": "ok"}}}`), transfer.JSON)
	require.NoError(t, err)
	got := doc.Apply(current())
	assert.Len(t, got.Entries, 1)
	assert.Contains(t, got.Entries, "2024-01-09")
}

func TestApplyLegacyPebbleColor(t *testing.T) {
	doc, err := transfer.Import(strings.NewReader(`{"pebbleColor": "#333333"}`), transfer.JSON)
	require.NoError(t, err)
	got := doc.Apply(current())
	assert.Equal(t, "#333333", got.PebbleColorTray)
	assert.Equal(t, "#333333", got.PebbleColorChip)

	doc, err = transfer.Import(strings.NewReader(`{"pebbleColor": "#333333", "pebbleColorChip": "#444444"}`), transfer.JSON)
	require.NoError(t, err)
	got = doc.Apply(current())
	assert.Equal(t, model.DefaultPebbleColor, got.PebbleColorTray)
	assert.Equal(t, "#444444", got.PebbleColorChip)
}

func TestApplyEmptyEmotionsRestoresDefaults(t *testing.T) {
	doc, err := transfer.Import(strings.NewReader(`{"emotions": []}`), transfer.JSON)
	require.NoError(t, err)
	got := doc.Apply(current())
	defaults, _ := model.DefaultEmotions()
	assert.Equal(t, defaults, got.Emotions)
}

func TestApplyDoesNotAliasCurrent(t *testing.T) {
	cur := current()
	doc, err := transfer.Import(strings.NewReader(`{"ringThickness": 10}`), transfer.JSON)
	require.NoError(t, err)
	got := doc.Apply(cur)
	got.Entries["2024-01-10"].Note = "changed"
	assert.Empty(t, cur.Entries["2024-01-10"].Note)
}

func TestFileName(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "temps-vecu-05-03-2024.json", transfer.FileName(d, transfer.JSON))
	assert.Equal(t, "temps-vecu-05-03-2024.yaml", transfer.FileName(d, transfer.YAML))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, transfer.YAML, transfer.FormatFor("backup.YML"))
	assert.Equal(t, transfer.JSON, transfer.FormatFor("backup.json"))
	assert.Equal(t, transfer.JSON, transfer.FormatFor("backup"))
	f, err := transfer.ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, transfer.YAML, f)
	_, err = transfer.ParseFormat("xml")
	assert.Error(t, err)
}
