package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagUser    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tv",
	Short: "Temps vécu – a personal daily time tracker",
	Long: `tv allocates the hours of each day to themes in fixed units, keeps a
note and a mood per day, and reports where the time went.
Settings live in ~/.tv/config.json; data goes to the configured backend.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute is the entry point called from main. SIGINT and SIGTERM cancel the
// command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// storageError marks failures of the data layer.
type storageError struct{ err error }

func (e storageError) Error() string { return e.err.Error() }
func (e storageError) Unwrap() error { return e.err }

// exitCode is 2 for storage errors and 1 for everything else.
func exitCode(err error) int {
	var se storageError
	if errors.As(err, &se) {
		return 2
	}
	return 1
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Profile to use (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(emotionCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dialCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
}
