package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/transfer"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported document",
	Long: `Replace the profile with the content of an exported document. Fields
missing from the document keep their current value. A document that cannot
be read, or whose top level is not an object, changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runImport),
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: json, yaml (default from the file extension)")
}

func runImport(cmd *cobra.Command, a *app, args []string) error {
	f := transfer.FormatFor(args[0])
	if importFormat != "" {
		var err error
		if f, err = transfer.ParseFormat(importFormat); err != nil {
			return err
		}
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer file.Close()

	doc, err := transfer.Import(file, f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	next := doc.Apply(a.sess.Snapshot())
	a.sess.Replace(next)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d theme(s) and %d day(s).\n", len(next.Themes), len(next.Entries))
	return nil
}
