package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/session"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/units"
)

func newSession(t *testing.T, opts ...session.Option) (*session.Session, *[]model.Snapshot) {
	t.Helper()
	var saved []model.Snapshot
	opts = append(opts, session.WithNotifier(func(s model.Snapshot) { saved = append(saved, s) }))
	snap := model.Snapshot{Themes: []model.Theme{
		{ID: "R", Name: "Rest", Color: "#9aa380", Category: "soin"},
		{ID: "W", Name: "Work", Color: "#c98b6b", Category: "pro"},
	}}
	return session.New("tester", snap, opts...), &saved
}

func sumFor(entry model.DayEntry, themeID string) int {
	total := 0
	for _, p := range entry.Pebbles {
		if p.ThemeID == themeID {
			total += p.Minutes
		}
	}
	return total
}

func TestNewSeedsDefaultThemes(t *testing.T) {
	var notified int
	s := session.New("", model.Snapshot{}, session.WithNotifier(func(model.Snapshot) { notified++ }))
	assert.Len(t, s.Themes(), 6)
	assert.Equal(t, model.DefaultUser, s.User())
	assert.Equal(t, 1, notified)
}

func TestSetThemeTotalScenario(t *testing.T) {
	s, saved := newSession(t)
	added, err := s.SetThemeTotal("2024-01-10", "R", 50)
	require.NoError(t, err)

	mins := make([]int, 0, len(added))
	for _, p := range added {
		mins = append(mins, p.Minutes)
	}
	assert.Equal(t, []int{15, 15, 15, 15}, mins)

	entry, err := s.Entry("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"R": 60, "W": 0}, stats.TotalsByTheme(s.Themes(), &entry))
	require.NotEmpty(t, *saved)
	last := (*saved)[len(*saved)-1]
	assert.Equal(t, model.SnapshotVersion, last.Version)
	assert.Equal(t, "tester", last.User)
}

func TestSetThemeTotalReplacesOnlyThatTheme(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.SetThemeTotal("2024-01-10", "W", 90)
	require.NoError(t, err)
	_, err = s.SetThemeTotal("2024-01-10", "R", 30)
	require.NoError(t, err)
	_, err = s.SetThemeTotal("2024-01-10", "R", 30)
	require.NoError(t, err)

	entry, _ := s.Entry("2024-01-10")
	assert.Equal(t, 30, sumFor(entry, "R"))
	assert.Equal(t, 90, sumFor(entry, "W"))

	_, err = s.SetThemeTotal("2024-01-10", "R", 0)
	require.NoError(t, err)
	entry, _ = s.Entry("2024-01-10")
	assert.Equal(t, 0, sumFor(entry, "R"))
	assert.Equal(t, 90, sumFor(entry, "W"))
	assert.Contains(t, s.Entries(), "2024-01-10")
}

func TestSetThemeTotalErrors(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.SetThemeTotal("2024-01-10", "nope", 30)
	assert.ErrorIs(t, err, model.ErrUnknownTheme)
	_, err = s.SetThemeTotal("10/01/2024", "R", 30)
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestSizeListPolicy(t *testing.T) {
	p, err := units.NewSizeList([]int{30, 60})
	require.NoError(t, err)
	s, _ := newSession(t, session.WithPolicy(p))
	added, err := s.SetThemeTotal("2024-01-10", "R", 100)
	require.NoError(t, err)
	require.Len(t, added, 3)
	assert.Equal(t, 60, added[0].Minutes)
}

func TestDeleteThemeCascades(t *testing.T) {
	s, _ := newSession(t)
	for _, d := range []string{"2024-01-08", "2024-01-09", "2024-01-10"} {
		_, err := s.SetThemeTotal(d, "R", 45)
		require.NoError(t, err)
		_, err = s.SetThemeTotal(d, "W", 15)
		require.NoError(t, err)
	}

	purged, err := s.DeleteTheme("R")
	require.NoError(t, err)
	assert.Equal(t, 9, purged)

	_, ok := s.Theme("R")
	assert.False(t, ok)
	for date, de := range s.Entries() {
		for _, p := range de.Pebbles {
			assert.NotEqual(t, "R", p.ThemeID, "date %s still references R", date)
		}
		assert.Zero(t, stats.TotalsByTheme(s.Themes(), de)["R"])
	}

	_, err = s.DeleteTheme("R")
	assert.ErrorIs(t, err, model.ErrUnknownTheme)
}

func TestThemeEditing(t *testing.T) {
	s, _ := newSession(t)
	th := s.AddTheme("", "#123456", "")
	assert.Equal(t, "Nouveau thème", th.Name)

	require.NoError(t, s.RenameTheme(th.ID, "Lecture"))
	require.NoError(t, s.RecolorTheme(th.ID, "#654321"))
	require.NoError(t, s.RecategorizeTheme(th.ID, "créatif"))

	found, err := s.FindTheme("lecture")
	require.NoError(t, err)
	assert.Equal(t, "#654321", found.Color)
	assert.Equal(t, "créatif", found.Category)

	moved, err := s.MoveTheme(th.ID, -1)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, th.ID, s.Themes()[1].ID)

	moved, err = s.MoveTheme("R", -1)
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestEmotionToggleAndNote(t *testing.T) {
	s, _ := newSession(t)
	got, err := s.ToggleEmotion("2024-01-10", "😊")
	require.NoError(t, err)
	assert.Equal(t, "😊", got)
	got, err = s.ToggleEmotion("2024-01-10", "😊")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, s.SetNote("2024-01-10", "calme"))
	entry, _ := s.Entry("2024-01-10")
	assert.Equal(t, "calme", entry.Note)
}

func TestEmotionPalette(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.ToggleEmotion("2024-01-10", "😊")
	require.NoError(t, err)

	require.NoError(t, s.RenameEmotion("😊", "🙂"))
	entry, _ := s.Entry("2024-01-10")
	assert.Equal(t, "🙂", entry.Emotion)
	assert.Equal(t, "#f6b94e", s.Settings().EmotionColors["🙂"])
	assert.NotContains(t, s.Emotions(), "😊")

	require.NoError(t, s.AddEmotion("🥳", ""))
	assert.Equal(t, "#cccccc", s.Settings().EmotionColors["🥳"])
	assert.Error(t, s.AddEmotion("🥳", ""))

	moved, err := s.MoveEmotion("🙂", 1)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "🙂", s.Emotions()[1])

	require.NoError(t, s.DeleteEmotion("🙂"))
	assert.NotContains(t, s.Emotions(), "🙂")
	entry, _ = s.Entry("2024-01-10")
	assert.Equal(t, "🙂", entry.Emotion)
}

func TestRenameEmotionRejectsExistingGlyph(t *testing.T) {
	s, _ := newSession(t)
	before := append([]string(nil), s.Emotions()...)
	_, err := s.ToggleEmotion("2024-01-10", "😊")
	require.NoError(t, err)

	assert.Error(t, s.RenameEmotion("😊", "😌"))
	assert.Error(t, s.RenameEmotion("😊", ""))
	assert.Equal(t, before, s.Emotions())
	entry, _ := s.Entry("2024-01-10")
	assert.Equal(t, "😊", entry.Emotion)
}

func TestReplace(t *testing.T) {
	s, _ := newSession(t)
	s.Replace(model.Snapshot{Themes: []model.Theme{{ID: "X", Name: "X"}}})
	require.Len(t, s.Themes(), 1)
	assert.Equal(t, model.DefaultRingThickness, s.Settings().RingThickness)
}

func TestAppearanceSettings(t *testing.T) {
	s, _ := newSession(t)
	s.SetRingThickness(24)
	s.SetHandleDiameter(0)
	s.SetPebbleColors("#000000", "")
	got := s.Settings()
	assert.Equal(t, 24.0, got.RingThickness)
	assert.Equal(t, model.DefaultHandleDiameter, got.HandleDiameter)
	assert.Equal(t, "#000000", got.PebbleColorTray)
	assert.Equal(t, model.DefaultPebbleColor, got.PebbleColorChip)
	assert.Error(t, s.SetSizes([]int{0}))
	assert.NoError(t, s.SetSizes([]int{15, 45}))
}
