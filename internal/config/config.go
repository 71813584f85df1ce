package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/debounce"
	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/remote"
	"github.com/Tiliavir/temps-vecu/internal/storage"
	"github.com/Tiliavir/temps-vecu/internal/units"
)

// ErrUnknownBackend is returned for a backend name Open does not know.
var ErrUnknownBackend = errors.New("unknown backend")

// Config is the root configuration for tv, stored in ~/.tv/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// User is the profile whose data the CLI reads and writes.
	User string `json:"user"`
	// Backend selects persistence: file, sqlite, postgres or remote.
	Backend string `json:"backend"`
	// DataFile is the JSON document used by the file backend.
	DataFile string `json:"data_file"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `json:"sqlite_path"`
	// PostgresDSN is the connection string used by the postgres backend.
	PostgresDSN string `json:"postgres_dsn"`
	// RemoteURL is the base URL of a running `tv serve`.
	RemoteURL string `json:"remote_url"`
	// Listen is the address `tv serve` binds to.
	Listen string `json:"listen"`
	// DebounceMS delays writes after the last change, in milliseconds.
	DebounceMS int `json:"debounce_ms"`

	Units UnitsConfig `json:"units"`
}

// UnitsConfig selects the allocation policy.
type UnitsConfig struct {
	// Policy is "step" (fixed units) or "sizes" (the user's pebble sizes).
	Policy string `json:"policy"`
	// Step is the unit size of the step policy, in minutes.
	Step int `json:"step"`
	// MaxMinutes is the largest duration per theme-day on the dial.
	MaxMinutes int `json:"max_minutes"`
}

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRemote   = "remote"

	PolicyStep  = "step"
	PolicySizes = "sizes"

	DefaultRemoteURL = "http://localhost:3000"
	DefaultListen    = ":3000"
)

// Default returns a Config pre-filled with defaults rooted at dir.
func Default(dir string) Config {
	return Config{
		User:       model.DefaultUser,
		Backend:    BackendFile,
		DataFile:   filepath.Join(dir, "data.json"),
		SQLitePath: filepath.Join(dir, "tv.db"),
		RemoteURL:  DefaultRemoteURL,
		Listen:     DefaultListen,
		DebounceMS: int(debounce.DefaultDelay / time.Millisecond),
		Units: UnitsConfig{
			Policy:     PolicyStep,
			Step:       units.Step,
			MaxMinutes: units.Max,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
// Paths left empty resolve inside the tv directory.
const configTemplate = `// tv configuration – ~/.tv/config.json
//
// All settings are optional; empty values fall back to the defaults below.
{
  // Profile whose days are read and written. Override with --user.
  "user": "Seb",

  // ── Persistence ─────────────────────────────────────────────────────────
  // • "file"     – one JSON document holding every user (default)
  // • "sqlite"   – local SQLite database
  // • "postgres" – shared PostgreSQL database (set postgres_dsn)
  // • "remote"   – a running "tv serve"; falls back to the file when unreachable
  "backend": "file",
  "data_file": "",
  "sqlite_path": "",
  "postgres_dsn": "",
  "remote_url": "http://localhost:3000",

  // Address "tv serve" listens on.
  "listen": ":3000",

  // Writes are delayed until no change happened for this long.
  "debounce_ms": 400,

  // ── Time units ──────────────────────────────────────────────────────────
  "units": {
    // "step"  – fixed units of "step" minutes, a remainder rounds up to one more unit
    // "sizes" – largest-first split into the pebble sizes set with "tv settings --sizes"
    "policy": "step",
    "step": 15,
    "max_minutes": 480
  }
}
`

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Path returns the config file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, "config.json")
}

// Load reads the config of the tv directory ($TV_HOME or ~/.tv), creating it
// with annotated defaults on first run.
func Load() (Config, error) {
	dir, err := storage.BaseDir()
	if err != nil {
		return Default("."), err
	}
	return LoadFrom(dir)
}

// LoadFrom reads dir/config.json. Lines starting with // are treated as
// comments and stripped before JSON parsing.
func LoadFrom(dir string) (Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			slog.Warn("could not create config file", "path", path, "err", writeErr)
		}
		return Default(dir), nil
	}
	if err != nil {
		return Default(dir), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return Default(dir), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	cfg.fill(Default(dir))
	return cfg, nil
}

// fill replaces zero-value fields with def's so callers always get a usable
// Config even if the file is only partially filled in.
func (c *Config) fill(def Config) {
	if c.User == "" {
		c.User = def.User
	}
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.DataFile == "" {
		c.DataFile = def.DataFile
	}
	if c.SQLitePath == "" {
		c.SQLitePath = def.SQLitePath
	}
	if c.RemoteURL == "" {
		c.RemoteURL = def.RemoteURL
	}
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.DebounceMS <= 0 {
		c.DebounceMS = def.DebounceMS
	}
	if c.Units.Policy == "" {
		c.Units.Policy = def.Units.Policy
	}
	if c.Units.Step <= 0 {
		c.Units.Step = def.Units.Step
	}
	if c.Units.MaxMinutes <= 0 {
		c.Units.MaxMinutes = def.Units.MaxMinutes
	}
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// Debounce returns the write delay.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Policy builds the allocation policy. The sizes policy reads the pebble
// sizes from the user's settings.
func (c Config) Policy(s model.Settings) (units.Policy, error) {
	switch c.Units.Policy {
	case PolicyStep:
		return units.NewFixedStep(c.Units.Step), nil
	case PolicySizes:
		p, err := units.NewSizeList(s.Sizes)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown unit policy %q: want %s or %s", c.Units.Policy, PolicyStep, PolicySizes)
}

// Open builds the configured store. The returned close function releases
// database handles and is safe to call for every backend.
func (c Config) Open(logger *slog.Logger) (storage.Store, func() error, error) {
	noop := func() error { return nil }
	switch c.Backend {
	case BackendFile:
		return storage.NewFileStore(c.DataFile, logger), noop, nil
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(c.SQLitePath), 0o700); err != nil {
			return nil, noop, fmt.Errorf("creating data directory: %w", err)
		}
		s, err := storage.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return nil, noop, errors.New("postgres backend needs postgres_dsn")
		}
		s, err := storage.OpenPostgres(c.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendRemote:
		local := storage.NewFileStore(c.DataFile, logger)
		return remote.NewClient(c.RemoteURL, remote.WithFallback(local), remote.WithLogger(logger)), noop, nil
	}
	return nil, noop, fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
}
