package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var moodDate string

var moodCmd = &cobra.Command{
	Use:   "mood [emotion]",
	Short: "Show or toggle the mood of a day",
	Long: `Without argument, list the configured emotions and mark the current one.
With an emotion, select it; selecting the current emotion clears it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(runMood),
}

func init() {
	moodCmd.Flags().StringVar(&moodDate, "date", "", "Day (YYYY-MM-DD, today, yesterday); defaults to today")
}

func runMood(cmd *cobra.Command, a *app, args []string) error {
	date, err := resolveDate(moodDate, time.Now())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		entry, err := a.sess.Entry(date)
		if err != nil {
			return err
		}
		for _, e := range a.sess.Emotions() {
			mark := " "
			if e == entry.Emotion {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %s\n", mark, e)
		}
		return nil
	}

	got, err := a.sess.ToggleEmotion(date, args[0])
	if err != nil {
		return err
	}
	if got == "" {
		fmt.Fprintf(out, "Mood cleared for %s.\n", date)
		return nil
	}
	fmt.Fprintf(out, "Mood for %s: %s\n", date, got)
	return nil
}
