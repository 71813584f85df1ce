// Package report renders stats and day views for the terminal using lipgloss.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/temps-vecu/internal/chart"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

const (
	swatch    = "██"
	emptyCell = "·"
	barWidth  = 24
	noData    = "Aucune donnée sur la période."
)

// Printer styles output for one writer. Colors are dropped when the writer is
// not a terminal.
type Printer struct {
	r *lipgloss.Renderer

	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	box      lipgloss.Style
}

// New returns a Printer rendering for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		r: r,
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#6a7c6f")).
			Padding(0, 1),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		value: r.NewStyle().
			Bold(true),
		muted: r.NewStyle().
			Faint(true),
		selected: r.NewStyle().
			Bold(true).
			Underline(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6a7c6f")).
			Padding(0, 1),
	}
}

func (p *Printer) color(hex string) lipgloss.Style {
	return p.r.NewStyle().Foreground(lipgloss.Color(hex))
}

// Title renders a heading.
func (p *Printer) Title(s string) string {
	return p.title.Render(s)
}

// Box frames content with a rounded border.
func (p *Printer) Box(content string) string {
	return p.box.Render(content)
}

// KPIs renders the headline figures of a summary on one line.
func (p *Printer) KPIs(s stats.Summary) string {
	top := "—"
	if s.TopName != "" {
		top = fmt.Sprintf("%s (%d%%)", s.TopName, s.TopShare)
	}
	parts := []string{
		p.kpi("Total", timecalc.FormatMinutes(s.TotalMinutes)),
		p.kpi("Jours", fmt.Sprint(s.Days)),
		p.kpi("Actifs", fmt.Sprint(s.ActiveDays)),
		p.kpi("Moy/jour", timecalc.FormatMinutes(s.AvgPerDay)),
		p.kpi("Top", top),
	}
	return strings.Join(parts, "   ")
}

func (p *Printer) kpi(name, v string) string {
	return p.label.Render(name+":") + " " + p.value.Render(v)
}

// Legend lists slices with a color swatch, a share bar, the formatted value
// and the percentage. counts prints raw values instead of durations.
func (p *Printer) Legend(slices []stats.Slice, hidden stats.Hidden, counts bool) string {
	total := 0
	for _, s := range slices {
		if !hidden[s.Key] {
			total += s.Minutes
		}
	}
	if total == 0 {
		return p.muted.Render(noData)
	}

	nameW := 0
	for _, s := range slices {
		nameW = max(nameW, lipgloss.Width(s.Name))
	}

	lines := make([]string, 0, len(slices))
	for _, s := range slices {
		v := timecalc.FormatMinutes(s.Minutes)
		if counts {
			v = fmt.Sprint(s.Minutes)
		}
		name := s.Name + strings.Repeat(" ", nameW-lipgloss.Width(s.Name))
		if hidden[s.Key] {
			lines = append(lines, p.muted.Render(fmt.Sprintf("%s %s  masqué", swatch, name)))
			continue
		}
		pct := stats.Percent(s.Minutes, total)
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s · %d%%",
			p.color(s.Color).Render(swatch), name, p.bar(s.Color, float64(s.Minutes)/float64(total)), v, pct))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// bar draws a share in [0,1] as a fixed-width block bar.
func (p *Printer) bar(hex string, share float64) string {
	filled := int(math.Round(share * barWidth))
	filled = min(max(filled, 0), barWidth)
	return p.color(hex).Render(strings.Repeat("█", filled)) + p.muted.Render(strings.Repeat("░", barWidth-filled))
}

// WeekStrip renders the days around the selected date as stacked mini bars.
// Each bar is scaled to the busiest day of the strip.
func (p *Printer) WeekStrip(days []stats.StripDay) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Total)
	}
	lines := make([]string, 0, len(days))
	for _, d := range days {
		date := timecalc.FormatDateEU(d.Date)
		if d.Selected {
			date = p.selected.Render(date)
		}
		var b strings.Builder
		used := 0
		if peak > 0 {
			for _, seg := range d.Segments {
				n := int(math.Round(float64(seg.Minutes) / float64(peak) * barWidth))
				n = min(n, barWidth-used)
				b.WriteString(p.color(seg.Color).Render(strings.Repeat("█", n)))
				used += n
			}
		}
		b.WriteString(strings.Repeat(" ", barWidth-used))
		lines = append(lines, fmt.Sprintf("%s  %s  %s", date, b.String(), timecalc.FormatBucket(d.Total)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Day renders one date: the per-theme buckets, the note and the mood.
func (p *Printer) Day(date string, themes []model.Theme, entry model.DayEntry, settings model.Settings) string {
	totals := stats.TotalsByTheme(themes, &entry)
	nameW := 0
	for _, t := range themes {
		nameW = max(nameW, lipgloss.Width(t.Name))
	}

	lines := []string{p.Title(date)}
	for _, t := range themes {
		name := t.Name + strings.Repeat(" ", nameW-lipgloss.Width(t.Name))
		n := 0
		for _, pb := range entry.Pebbles {
			if pb.ThemeID == t.ID {
				n++
			}
		}
		chips := strings.Repeat("●", n)
		lines = append(lines, fmt.Sprintf("%s %s  %6s  %s",
			p.color(t.Color).Render(swatch), name, timecalc.FormatBucket(totals[t.ID]), p.color(settings.PebbleColorChip).Render(chips)))
	}
	lines = append(lines, "", p.kpi("Total", timecalc.FormatBucket(stats.DayTotal(&entry))))
	if entry.Emotion != "" {
		lines = append(lines, p.kpi("Humeur", p.color(settings.EmotionColor(entry.Emotion)).Render(entry.Emotion)))
	}
	if entry.Note != "" {
		lines = append(lines, p.label.Render("Note:"), entry.Note)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Heatmap renders days as a weekday-by-week grid of shaded cells, using the
// same layout and intensity scale as the heatmap chart.
func (p *Printer) Heatmap(days []stats.Day, hidden stats.Hidden) string {
	h := chart.NewHeatmap(chart.HeatmapViewport(0, 1), days, chart.Options{Hidden: hidden})
	if h.Cols == 0 {
		return p.muted.Render(noData)
	}
	grid := make([][]string, 7)
	for r := range grid {
		grid[r] = make([]string, h.Cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for _, c := range h.Cells {
		cell := emptyCell
		if c.Total > 0 {
			cell = p.color(c.Color).Render("■")
		}
		grid[c.Row][c.Col] = cell
	}
	lines := make([]string, 0, 7)
	for r, name := range chart.Weekdays {
		lines = append(lines, p.label.Render(name)+" "+strings.Join(grid[r], " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Stats renders a full report: KPIs, legend, heatmap and mood legend.
func (p *Printer) Stats(r stats.Report, hidden stats.Hidden) string {
	blocks := []string{
		p.Title(fmt.Sprintf("Stats · %s · %s", r.Range, r.GroupBy)),
		p.Box(p.KPIs(r.Summary)),
		p.Legend(r.Slices, hidden, false),
		"",
		p.Heatmap(r.Daily, hidden),
	}
	if len(r.EmotionSlices) > 0 && stats.Hidden(nil).Total(r.EmotionCounts) > 0 {
		blocks = append(blocks, "", p.Title("Humeurs"), p.Legend(r.EmotionSlices, nil, true))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
