package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var emotionAddColor string

var emotionCmd = &cobra.Command{
	Use:   "emotion",
	Short: "Manage the mood palette",
}

var emotionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List emotions with their colors",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		settings := a.sess.Settings()
		for _, e := range a.sess.Emotions() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e, settings.EmotionColor(e))
		}
		return nil
	}),
}

var emotionAddCmd = &cobra.Command{
	Use:   "add <glyph>",
	Short: "Add an emotion",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.sess.AddEmotion(args[0], emotionAddColor)
	}),
}

var emotionRenameCmd = &cobra.Command{
	Use:   "rename <glyph> <new-glyph>",
	Short: "Replace an emotion; past days follow",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.sess.RenameEmotion(args[0], args[1])
	}),
}

var emotionColorCmd = &cobra.Command{
	Use:   "color <glyph> <#rrggbb>",
	Short: "Change an emotion's color",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.sess.RecolorEmotion(args[0], args[1])
	}),
}

var emotionUpCmd = &cobra.Command{
	Use:   "up <glyph>",
	Short: "Move an emotion one place up",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(moveEmotion(-1)),
}

var emotionDownCmd = &cobra.Command{
	Use:   "down <glyph>",
	Short: "Move an emotion one place down",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(moveEmotion(1)),
}

var emotionDeleteCmd = &cobra.Command{
	Use:   "delete <glyph>",
	Short: "Remove an emotion from the palette; past days keep it",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return a.sess.DeleteEmotion(args[0])
	}),
}

func init() {
	emotionAddCmd.Flags().StringVar(&emotionAddColor, "color", "", "Emotion color (#rrggbb)")

	emotionCmd.AddCommand(emotionListCmd)
	emotionCmd.AddCommand(emotionAddCmd)
	emotionCmd.AddCommand(emotionRenameCmd)
	emotionCmd.AddCommand(emotionColorCmd)
	emotionCmd.AddCommand(emotionUpCmd)
	emotionCmd.AddCommand(emotionDownCmd)
	emotionCmd.AddCommand(emotionDeleteCmd)
}

func moveEmotion(delta int) func(cmd *cobra.Command, a *app, args []string) error {
	return func(cmd *cobra.Command, a *app, args []string) error {
		moved, err := a.sess.MoveEmotion(args[0], delta)
		if err != nil {
			return err
		}
		if !moved {
			fmt.Fprintln(cmd.OutOrStdout(), "Already at the end of the list.")
		}
		return nil
	}
}
