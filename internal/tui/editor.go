// Package tui is the interactive day editor: one row per theme, adjusted with
// the keyboard or by dragging along a row's bar with the mouse.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/session"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

const (
	// headerLines is the number of lines above the first theme row.
	headerLines = 2
	barWidth    = 32
	cursorMark  = "▸ "
	swatch      = "██"
	helpText    = "↑/↓ thème · ←/→ ±pas · 0 effacer · e humeur · [/] jour · t aujourd'hui · q quitter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#6a7c6f")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// Model is the bubbletea model of the editor.
type Model struct {
	sess  *session.Session
	scale dial.Scale
	date  time.Time

	cursor   int
	dragging bool
	err      error
}

// New returns an editor for sess opened on date.
func New(sess *session.Session, scale dial.Scale, date time.Time) Model {
	return Model{sess: sess, scale: scale, date: timecalc.StartOfDay(date)}
}

// Run starts the editor full screen with mouse support until the user quits
// or ctx is done.
func Run(ctx context.Context, sess *session.Session, scale dial.Scale, date time.Time) error {
	p := tea.NewProgram(New(sess, scale, date),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// Date returns the day being edited.
func (m Model) Date() string { return timecalc.ISO(m.date) }

// Cursor returns the index of the selected theme.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg)
	case tea.MouseMsg:
		return m.mouse(msg), nil
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	themes := m.sess.Themes()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(themes)-1 {
			m.cursor++
		}
	case "right", "l", "+":
		m = m.nudge(themes, m.scale.Step)
	case "left", "h", "-":
		m = m.nudge(themes, -m.scale.Step)
	case "0", "backspace":
		m = m.set(themes, 0)
	case "e":
		m = m.cycleEmotion()
	case "[":
		m.date = timecalc.AddDays(m.date, -1)
	case "]":
		m.date = timecalc.AddDays(m.date, 1)
	case "t":
		m.date = timecalc.StartOfDay(time.Now())
	}
	return m, nil
}

// mouse maps a press or drag on a theme's bar to that theme's total.
func (m Model) mouse(msg tea.MouseMsg) Model {
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
		return m
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		themes := m.sess.Themes()
		row := msg.Y - headerLines
		if row < 0 || row >= len(themes) {
			return m
		}
		m.cursor = row
		m.dragging = true
		return m.set(themes, m.minutesAt(themes, msg.X))
	case msg.Action == tea.MouseActionMotion && m.dragging:
		themes := m.sess.Themes()
		return m.set(themes, m.minutesAt(themes, msg.X))
	}
	return m
}

// barStart is the column of the first bar cell.
func barStart(themes []model.Theme) int {
	return lipgloss.Width(cursorMark) + lipgloss.Width(swatch) + 1 + nameWidth(themes) + 2
}

func nameWidth(themes []model.Theme) int {
	w := 0
	for _, t := range themes {
		w = max(w, lipgloss.Width(t.Name))
	}
	return w
}

// minutesAt converts a column to minutes along the bar. Each cell covers an
// equal share of the scale and the cell end maps to the cell's value.
func (m Model) minutesAt(themes []model.Theme, x int) float64 {
	cells := float64(x-barStart(themes)) + 1
	return math.Max(0, cells) / barWidth * float64(m.scale.Max)
}

func (m Model) current(themes []model.Theme) (model.Theme, int, bool) {
	if m.cursor < 0 || m.cursor >= len(themes) {
		return model.Theme{}, 0, false
	}
	t := themes[m.cursor]
	entry, err := m.sess.Entry(m.Date())
	if err != nil {
		return t, 0, true
	}
	return t, stats.TotalsByTheme(themes, &entry)[t.ID], true
}

func (m Model) nudge(themes []model.Theme, delta int) Model {
	_, total, ok := m.current(themes)
	if !ok {
		return m
	}
	return m.set(themes, float64(total+delta))
}

func (m Model) set(themes []model.Theme, minutes float64) Model {
	t, _, ok := m.current(themes)
	if !ok {
		return m
	}
	_, m.err = m.sess.SetThemeTotal(m.Date(), t.ID, float64(m.scale.Snap(minutes)))
	return m
}

// cycleEmotion selects the next configured emotion; past the last one the
// mood is cleared.
func (m Model) cycleEmotion() Model {
	emotions := m.sess.Emotions()
	if len(emotions) == 0 {
		return m
	}
	entry, err := m.sess.Entry(m.Date())
	if err != nil {
		m.err = err
		return m
	}
	next := emotions[0]
	for i, e := range emotions {
		if e == entry.Emotion {
			if i == len(emotions)-1 {
				next = e
			} else {
				next = emotions[i+1]
			}
			break
		}
	}
	_, m.err = m.sess.ToggleEmotion(m.Date(), next)
	return m
}

func (m Model) View() string {
	themes := m.sess.Themes()
	entry, err := m.sess.Entry(m.Date())
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	totals := stats.TotalsByTheme(themes, &entry)
	nameW := nameWidth(themes)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", m.sess.User(), m.Date())))
	b.WriteString("\n\n")
	for i, t := range themes {
		mark := strings.Repeat(" ", lipgloss.Width(cursorMark))
		if i == m.cursor {
			mark = cursorMark
		}
		v := totals[t.ID]
		filled := int(math.Round(m.scale.Fraction(float64(v)) * barWidth))
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color))
		fmt.Fprintf(&b, "%s%s %s%s  %s%s  %s\n",
			mark,
			color.Render(swatch),
			t.Name, strings.Repeat(" ", nameW-lipgloss.Width(t.Name)),
			color.Render(strings.Repeat("█", filled)),
			mutedStyle.Render(strings.Repeat("░", barWidth-filled)),
			timecalc.FormatBucket(v))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %s", timecalc.FormatBucket(stats.DayTotal(&entry)))
	if entry.Emotion != "" {
		fmt.Fprintf(&b, "   Humeur: %s", entry.Emotion)
	}
	if entry.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", entry.Note)
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n\n" + mutedStyle.Render(helpText) + "\n")
	return b.String()
}
