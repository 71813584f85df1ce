package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

var setDate string

var setCmd = &cobra.Command{
	Use:   "set <theme> <duration>",
	Short: "Set the time spent on a theme for a day",
	Long: `Replace every allocation of a theme on a day with the given duration,
split into units by the configured policy. The theme is matched by id or
by name (case-insensitive). Durations: 90, 90m, 1h30, 1h30m, 1:30. Zero clears.`,
	Args: cobra.ExactArgs(2),
	RunE: withApp(runSet),
}

func init() {
	setCmd.Flags().StringVar(&setDate, "date", "", "Day to edit (YYYY-MM-DD, today, yesterday); defaults to today")
}

func runSet(cmd *cobra.Command, a *app, args []string) error {
	date, err := resolveDate(setDate, time.Now())
	if err != nil {
		return err
	}
	minutes, err := parseMinutes(args[1])
	if err != nil {
		return err
	}
	theme, err := a.sess.FindTheme(args[0])
	if err != nil {
		return err
	}
	pebbles, err := a.sess.SetThemeTotal(date, theme.ID, minutes)
	if err != nil {
		return err
	}

	entry, err := a.sess.Entry(date)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s %s\n",
		date, theme.Name, timecalc.FormatBucket(model.TotalMinutes(pebbles)), describeUnits(pebbles))
	fmt.Fprintf(cmd.OutOrStdout(), "Total du jour: %s\n", timecalc.FormatBucket(stats.DayTotal(&entry)))
	return nil
}

// describeUnits renders a decomposition as "(2 × 30m + 1 × 15m)".
func describeUnits(pebbles []model.Pebble) string {
	if len(pebbles) == 0 {
		return ""
	}
	var sizes []int
	counts := map[int]int{}
	for _, p := range pebbles {
		if counts[p.Minutes] == 0 {
			sizes = append(sizes, p.Minutes)
		}
		counts[p.Minutes]++
	}
	out := "("
	for i, s := range sizes {
		if i > 0 {
			out += " + "
		}
		out += fmt.Sprintf("%d × %s", counts[s], timecalc.FormatMinutes(s))
	}
	return out + ")"
}
