package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/timecalc"
	"github.com/Tiliavir/temps-vecu/internal/tui"
)

var editDate string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a day interactively (keyboard and mouse)",
	Args:  cobra.NoArgs,
	RunE:  withApp(runEdit),
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "Day to open (YYYY-MM-DD, today, yesterday); defaults to today")
}

func runEdit(cmd *cobra.Command, a *app, args []string) error {
	now := time.Now()
	date, err := resolveDate(editDate, now)
	if err != nil {
		return err
	}
	day, err := timecalc.ParseISO(date, now.Location())
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), a.sess, a.scale(), day)
}
