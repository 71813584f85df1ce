package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps-vecu/internal/config"
	"github.com/Tiliavir/temps-vecu/internal/debounce"
	"github.com/Tiliavir/temps-vecu/internal/dial"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/session"
	"github.com/Tiliavir/temps-vecu/internal/timecalc"
)

// app is the per-invocation wiring: the user's session and the debounced
// writer that carries its changes to the configured store.
type app struct {
	cfg        config.Config
	closeStore func() error
	sess       *session.Session
	saver      *debounce.Debouncer[model.Snapshot]
}

func openApp(ctx context.Context) (*app, error) {
	logger := slog.Default()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagUser != "" {
		cfg.User = flagUser
	}

	store, closeStore, err := cfg.Open(logger)
	if err != nil {
		return nil, storageError{err}
	}
	snap, err := store.Load(ctx, cfg.User)
	if err != nil {
		closeStore()
		return nil, storageError{fmt.Errorf("loading %s: %w", cfg.User, err)}
	}
	policy, err := cfg.Policy(snap.Settings)
	if err != nil {
		closeStore()
		return nil, err
	}

	a := &app{cfg: cfg, closeStore: closeStore}
	a.saver = debounce.New(cfg.Debounce(), func(ctx context.Context, s model.Snapshot) error {
		return store.Save(ctx, cfg.User, s)
	}, debounce.WithLogger(logger))
	a.sess = session.New(cfg.User, snap,
		session.WithPolicy(policy),
		session.WithNotifier(a.saver.Schedule),
		session.WithLogger(logger),
	)
	logger.Debug("session opened", "user", cfg.User, "backend", cfg.Backend, "policy", policy)
	return a, nil
}

// close writes any pending change and releases the store.
func (a *app) close(ctx context.Context) error {
	err := a.saver.Flush(ctx)
	a.saver.Stop()
	if cerr := a.closeStore(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return storageError{fmt.Errorf("saving: %w", err)}
	}
	return nil
}

func (a *app) scale() dial.Scale {
	return dial.ForPolicy(a.sess.Policy(), a.cfg.Units.MaxMinutes)
}

// withApp adapts fn into a RunE that opens the app first and always flushes
// it afterwards, even when the command was interrupted.
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		runErr := fn(cmd, a, args)
		return errors.Join(runErr, a.close(context.WithoutCancel(ctx)))
	}
}

// resolveDate turns a --date value into an ISO date. Empty means today;
// "yesterday" and "tomorrow" are relative to now.
func resolveDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return timecalc.ISO(now), nil
	case "yesterday":
		return timecalc.ISO(timecalc.AddDays(now, -1)), nil
	case "tomorrow":
		return timecalc.ISO(timecalc.AddDays(now, 1)), nil
	}
	t, err := timecalc.ParseISO(s, now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid --date value %q: %w", s, err)
	}
	return timecalc.ISO(t), nil
}

var hourMinute = regexp.MustCompile(`^(\d+)h(\d+)$`)

// parseMinutes reads a duration given as minutes ("90"), a Go duration
// ("1h30m", "45m", "1.5h"), a short form ("1h30") or a clock ("1:30").
func parseMinutes(s string) (float64, error) {
	in := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if in == "" {
		return 0, errors.New("empty duration")
	}
	if v, err := strconv.ParseFloat(in, 64); err == nil {
		if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return v, nil
	}
	if h, m, ok := strings.Cut(in, ":"); ok {
		hours, herr := strconv.Atoi(h)
		mins, merr := strconv.Atoi(m)
		if herr != nil || merr != nil || hours < 0 || mins < 0 || mins >= 60 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return float64(hours*60 + mins), nil
	}
	if hourMinute.MatchString(in) {
		in += "m"
	}
	d, err := time.ParseDuration(in)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid duration %q: want minutes, 1h30 or 1:30", s)
	}
	return d.Minutes(), nil
}
