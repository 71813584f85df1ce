package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/storage"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"90", 90, false},
		{"0", 0, false},
		{"7.5", 7.5, false},
		{"45m", 45, false},
		{"1h", 60, false},
		{"1h30", 90, false},
		{"1h30m", 90, false},
		{"1h 30m", 90, false},
		{"1.5h", 90, false},
		{"2:15", 135, false},
		{"0:45", 45, false},
		{"", 0, true},
		{"-15", 0, true},
		{"-1h", 0, true},
		{"1:75", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMinutes(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMinutes(%q) = %v, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMinutes(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMinutes(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "2024-03-01", false},
		{"today", "2024-03-01", false},
		{"yesterday", "2024-02-29", false},
		{"tomorrow", "2024-03-02", false},
		{"2023-12-31", "2023-12-31", false},
		{"31/12/2023", "", true},
	}
	for _, tt := range tests {
		got, err := resolveDate(tt.input, now)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePoints(t *testing.T) {
	got, err := parsePoints(" 80,10 ; 150.5,80;")
	if err != nil {
		t.Fatalf("parsePoints: %v", err)
	}
	want := [][2]float64{{80, 10}, {150.5, 80}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("parsePoints = %v, want %v", got, want)
	}
	for _, bad := range []string{"", ";", "80", "a,b"} {
		if _, err := parsePoints(bad); err == nil {
			t.Errorf("parsePoints(%q) should fail", bad)
		}
	}
}

func TestDescribeUnits(t *testing.T) {
	pebbles := []model.Pebble{{Minutes: 60}, {Minutes: 60}, {Minutes: 30}}
	if got := describeUnits(pebbles); got != "(2 × 1h + 1 × 30m)" {
		t.Errorf("describeUnits = %q", got)
	}
	if got := describeUnits(nil); got != "" {
		t.Errorf("describeUnits(nil) = %q", got)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(errors.New("usage")); got != 1 {
		t.Errorf("plain error exit = %d, want 1", got)
	}
	wrapped := errors.Join(errors.New("run"), storageError{errors.New("disk full")})
	if got := exitCode(wrapped); got != 2 {
		t.Errorf("storage error exit = %d, want 2", got)
	}
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tv %s: %v\nstderr: %s", strings.Join(args, " "), err, errOut.String())
	}
	return out.String()
}

func TestCommandsEndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv(storage.HomeEnv, home)
	work := t.TempDir()

	out := run(t, "--user", "Alice", "theme", "add", "Atelier", "--color", "#ff0000")
	if !strings.Contains(out, `Added theme "Atelier"`) {
		t.Fatalf("theme add output: %q", out)
	}

	out = run(t, "--user", "Alice", "set", "atelier", "1h30", "--date", "2024-01-10")
	if !strings.Contains(out, "2024-01-10 Atelier: 1h 30m (6 × 15m)") {
		t.Errorf("set output: %q", out)
	}
	if !strings.Contains(out, "Total du jour: 1h 30m") {
		t.Errorf("set total: %q", out)
	}

	run(t, "--user", "Alice", "note", "--date", "2024-01-10", "atelier", "bois")
	out = run(t, "--user", "Alice", "day", "--date", "2024-01-10")
	for _, want := range []string{"Atelier", "1h 30m", "atelier bois"} {
		if !strings.Contains(out, want) {
			t.Errorf("day output missing %q:\n%s", want, out)
		}
	}

	exported := filepath.Join(work, "alice.yaml")
	run(t, "--user", "Alice", "export", "--format", "yaml", "--out", exported)
	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if !strings.Contains(string(data), "name: Atelier") || !strings.Contains(string(data), "version: 3") {
		t.Errorf("export content:\n%s", data)
	}

	out = run(t, "--user", "Alice", "theme", "delete", "Atelier")
	if !strings.Contains(out, "Removed 6 allocation(s).") {
		t.Errorf("delete output: %q", out)
	}

	run(t, "--user", "Alice", "import", exported)

	out = run(t, "--user", "Alice", "stats", "--range", "all", "--json")
	var rep struct {
		Summary struct {
			TotalMinutes int `json:"totalMinutes"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("stats json: %v\n%s", err, out)
	}
	if rep.Summary.TotalMinutes != 90 {
		t.Errorf("total after import = %d, want 90", rep.Summary.TotalMinutes)
	}

	// Another profile in the same data file is untouched.
	out = run(t, "--user", "Bob", "stats", "--range", "all", "--json")
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("stats json: %v", err)
	}
	if rep.Summary.TotalMinutes != 0 {
		t.Errorf("Bob total = %d, want 0", rep.Summary.TotalMinutes)
	}

	if _, err := os.Stat(filepath.Join(home, "data.json")); err != nil {
		t.Errorf("data file not written: %v", err)
	}
}
