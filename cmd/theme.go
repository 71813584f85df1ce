package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	themeAddColor    string
	themeAddCategory string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes in display order",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tCOLOR\tID")
		for _, t := range a.sess.Themes() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name, t.CategoryOrDefault(), t.Color, t.ID)
		}
		return w.Flush()
	}),
}

var themeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a theme",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		t := a.sess.AddTheme(args[0], themeAddColor, themeAddCategory)
		fmt.Fprintf(cmd.OutOrStdout(), "Added theme %q (%s).\n", t.Name, t.ID)
		return nil
	}),
}

var themeRenameCmd = &cobra.Command{
	Use:   "rename <theme> <new-name>",
	Short: "Rename a theme",
	Args:  cobra.ExactArgs(2),
	RunE: withTheme(func(cmd *cobra.Command, a *app, id string, args []string) error {
		return a.sess.RenameTheme(id, args[1])
	}),
}

var themeColorCmd = &cobra.Command{
	Use:   "color <theme> <#rrggbb>",
	Short: "Change a theme's color",
	Args:  cobra.ExactArgs(2),
	RunE: withTheme(func(cmd *cobra.Command, a *app, id string, args []string) error {
		return a.sess.RecolorTheme(id, args[1])
	}),
}

var themeCategoryCmd = &cobra.Command{
	Use:   "category <theme> <category>",
	Short: "Change a theme's category",
	Args:  cobra.ExactArgs(2),
	RunE: withTheme(func(cmd *cobra.Command, a *app, id string, args []string) error {
		return a.sess.RecategorizeTheme(id, args[1])
	}),
}

var themeUpCmd = &cobra.Command{
	Use:   "up <theme>",
	Short: "Move a theme one place up",
	Args:  cobra.ExactArgs(1),
	RunE:  withTheme(moveTheme(-1)),
}

var themeDownCmd = &cobra.Command{
	Use:   "down <theme>",
	Short: "Move a theme one place down",
	Args:  cobra.ExactArgs(1),
	RunE:  withTheme(moveTheme(1)),
}

var themeDeleteCmd = &cobra.Command{
	Use:   "delete <theme>",
	Short: "Delete a theme and every allocation made to it",
	Args:  cobra.ExactArgs(1),
	RunE: withTheme(func(cmd *cobra.Command, a *app, id string, args []string) error {
		purged, err := a.sess.DeleteTheme(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d allocation(s).\n", purged)
		return nil
	}),
}

func init() {
	themeAddCmd.Flags().StringVar(&themeAddColor, "color", "#9aa380", "Theme color (#rrggbb)")
	themeAddCmd.Flags().StringVar(&themeAddCategory, "category", "", "Theme category")

	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeAddCmd)
	themeCmd.AddCommand(themeRenameCmd)
	themeCmd.AddCommand(themeColorCmd)
	themeCmd.AddCommand(themeCategoryCmd)
	themeCmd.AddCommand(themeUpCmd)
	themeCmd.AddCommand(themeDownCmd)
	themeCmd.AddCommand(themeDeleteCmd)
}

// withTheme resolves the first argument to a theme id before running fn.
func withTheme(fn func(cmd *cobra.Command, a *app, id string, args []string) error) func(*cobra.Command, []string) error {
	return withApp(func(cmd *cobra.Command, a *app, args []string) error {
		t, err := a.sess.FindTheme(args[0])
		if err != nil {
			return err
		}
		return fn(cmd, a, t.ID, args)
	})
}

func moveTheme(delta int) func(cmd *cobra.Command, a *app, id string, args []string) error {
	return func(cmd *cobra.Command, a *app, id string, args []string) error {
		moved, err := a.sess.MoveTheme(id, delta)
		if err != nil {
			return err
		}
		if !moved {
			fmt.Fprintln(cmd.OutOrStdout(), "Already at the end of the list.")
		}
		return nil
	}
}
