package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/session"
	"github.com/Tiliavir/temps-vecu/internal/stats"
)

var day = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func newEditor(t *testing.T) (Model, *session.Session, *int) {
	t.Helper()
	snap := model.Snapshot{
		Themes: []model.Theme{
			{ID: "a", Name: "Atelier", Color: "#c98b6b"},
			{ID: "b", Name: "Bureau", Color: "#8bb2b2"},
		},
		Settings: model.DefaultSettings(),
	}
	changes := 0
	sess := session.New("Alice", snap, session.WithNotifier(func(model.Snapshot) { changes++ }))
	return New(sess, dial.DefaultScale, day), sess, &changes
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func total(t *testing.T, sess *session.Session, date, themeID string) int {
	t.Helper()
	entry, err := sess.Entry(date)
	require.NoError(t, err)
	return stats.TotalsByTheme(sess.Themes(), &entry)[themeID]
}

func TestKeysAdjustSelectedTheme(t *testing.T) {
	m, sess, changes := newEditor(t)
	assert.Equal(t, "2024-01-10", m.Date())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, runes("+"))
	assert.Equal(t, 45, total(t, sess, "2024-01-10", "a"))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, 15, total(t, sess, "2024-01-10", "b"))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Cursor(), "cursor stays on the last row")
	assert.Equal(t, 0, total(t, sess, "2024-01-10", "b"), "never below zero")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, runes("0"))
	assert.Equal(t, 0, total(t, sess, "2024-01-10", "a"))
	assert.Equal(t, 7, *changes)
}

func TestKeysChangeDay(t *testing.T) {
	m, sess, _ := newEditor(t)
	m = send(t, m, runes("]"), tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "2024-01-11", m.Date())
	assert.Equal(t, 15, total(t, sess, "2024-01-11", "a"))
	assert.Equal(t, 0, total(t, sess, "2024-01-10", "a"))

	m = send(t, m, runes("["), runes("["))
	assert.Equal(t, "2024-01-09", m.Date())
}

func TestEmotionCycle(t *testing.T) {
	m, sess, _ := newEditor(t)
	emotions := sess.Emotions()
	require.NotEmpty(t, emotions)

	m = send(t, m, runes("e"))
	entry, _ := sess.Entry(m.Date())
	assert.Equal(t, emotions[0], entry.Emotion)

	m = send(t, m, runes("e"))
	entry, _ = sess.Entry(m.Date())
	assert.Equal(t, emotions[1], entry.Emotion)

	for range emotions[2:] {
		m = send(t, m, runes("e"))
	}
	entry, _ = sess.Entry(m.Date())
	assert.Equal(t, emotions[len(emotions)-1], entry.Emotion)

	m = send(t, m, runes("e"))
	entry, _ = sess.Entry(m.Date())
	assert.Empty(t, entry.Emotion, "past the last emotion the mood is cleared")
}

func TestMouseDrag(t *testing.T) {
	m, sess, _ := newEditor(t)
	x0 := barStart(sess.Themes())
	row := headerLines + 1

	m = send(t, m, tea.MouseMsg{X: x0, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, 15, total(t, sess, "2024-01-10", "b"))

	m = send(t, m, tea.MouseMsg{X: x0 + barWidth/2 - 1, Y: row, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, 240, total(t, sess, "2024-01-10", "b"))

	m = send(t, m, tea.MouseMsg{X: x0 + barWidth + 10, Y: row, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, 480, total(t, sess, "2024-01-10", "b"), "clamped to the scale")

	m = send(t, m,
		tea.MouseMsg{X: x0, Y: row, Action: tea.MouseActionRelease},
		tea.MouseMsg{X: x0 + 4, Y: row, Action: tea.MouseActionMotion},
	)
	assert.Equal(t, 480, total(t, sess, "2024-01-10", "b"), "motion after release is ignored")

	m = send(t, m, tea.MouseMsg{X: x0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.Cursor(), "press outside the rows is ignored")
}

func TestQuit(t *testing.T) {
	m, _, _ := newEditor(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m, sess, _ := newEditor(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	require.NoError(t, sess.SetNote(m.Date(), "rangement"))

	v := m.View()
	lines := strings.Split(v, "\n")
	require.Greater(t, len(lines), headerLines+2)
	assert.Contains(t, lines[0], "Alice · 2024-01-10")
	assert.True(t, strings.HasPrefix(lines[headerLines], cursorMark), lines[headerLines])
	assert.Contains(t, lines[headerLines], "Atelier")
	assert.True(t, strings.HasSuffix(lines[headerLines], "1h"), lines[headerLines])
	assert.True(t, strings.HasSuffix(lines[headerLines+1], "0h"), lines[headerLines+1])
	assert.Contains(t, v, "Total: 1h")
	assert.Contains(t, v, "Note: rangement")
}
