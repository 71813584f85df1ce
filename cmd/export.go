package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/transfer"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export themes, days and settings to a file",
	Long: `Write the whole profile as a version 3 document. The default file name is
temps-vecu-dd-mm-yyyy.json (or .yaml) in the current directory; - writes to stdout.`,
	Args: cobra.NoArgs,
	RunE: withApp(runExport),
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file, - for stdout")
}

func runExport(cmd *cobra.Command, a *app, args []string) error {
	f, err := transfer.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	out := exportOut
	if out == "" {
		out = transfer.FileName(time.Now(), f)
	}
	if out == "-" {
		return transfer.Export(cmd.OutOrStdout(), a.sess.User(), a.sess.Snapshot(), f)
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := transfer.Export(file, a.sess.User(), a.sess.Snapshot(), f); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
	return nil
}
