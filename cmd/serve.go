package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/config"
	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API used by remote clients, with SVG charts",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Backend == config.BackendRemote {
		// A server backed by itself would loop; serve the local file instead.
		cfg.Backend = config.BackendFile
	}
	store, closeStore, err := cfg.Open(slog.Default())
	if err != nil {
		return storageError{err}
	}
	defer closeStore()

	addr := cfg.Listen
	if serveListen != "" {
		addr = serveListen
	}
	scale := dial.DefaultScale
	scale.Max = cfg.Units.MaxMinutes
	if cfg.Units.Policy == config.PolicyStep {
		scale.Step = cfg.Units.Step
	}
	srv := server.New(store, server.WithLogger(slog.Default()), server.WithScale(scale))
	return srv.ListenAndServe(cmd.Context(), addr)
}
