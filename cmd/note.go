package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	noteDate  string
	noteClear bool
)

var noteCmd = &cobra.Command{
	Use:   "note [text...]",
	Short: "Show or set the note of a day",
	RunE:  withApp(runNote),
}

func init() {
	noteCmd.Flags().StringVar(&noteDate, "date", "", "Day (YYYY-MM-DD, today, yesterday); defaults to today")
	noteCmd.Flags().BoolVar(&noteClear, "clear", false, "Remove the note")
}

func runNote(cmd *cobra.Command, a *app, args []string) error {
	date, err := resolveDate(noteDate, time.Now())
	if err != nil {
		return err
	}
	if len(args) == 0 && !noteClear {
		entry, err := a.sess.Entry(date)
		if err != nil {
			return err
		}
		if entry.Note == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No note for %s.\n", date)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), entry.Note)
		return nil
	}

	note := strings.Join(args, " ")
	if noteClear {
		note = ""
	}
	if err := a.sess.SetNote(date, note); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Note saved for %s.\n", date)
	return nil
}
