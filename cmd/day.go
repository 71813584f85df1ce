package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/report"
	"github.com/Tiliavir/temps-vecu/internal/stats"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a day: time per theme, note, mood and the surrounding days",
	Args:  cobra.NoArgs,
	RunE:  withApp(runDay),
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Day to show (YYYY-MM-DD, today, yesterday); defaults to today")
}

func runDay(cmd *cobra.Command, a *app, args []string) error {
	now := time.Now()
	date, err := resolveDate(dayDate, now)
	if err != nil {
		return err
	}
	selected, err := timecalc.ParseISO(date, now.Location())
	if err != nil {
		return err
	}
	entry, err := a.sess.Entry(date)
	if err != nil {
		return err
	}

	p := report.New(cmd.OutOrStdout())
	themes := a.sess.Themes()
	fmt.Fprintln(cmd.OutOrStdout(), p.Day(date, themes, entry, a.sess.Settings()))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), p.WeekStrip(stats.WeekStrip(selected, a.sess.Entries(), themes)))
	return nil
}
