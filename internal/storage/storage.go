// Package storage persists whole per-user snapshots. Every backend does a
// full-state overwrite on save; there are no partial updates.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// HomeEnv relocates the data directory when set.
const HomeEnv = "TV_HOME"

// ErrCorrupt is returned when stored data cannot be decoded.
var ErrCorrupt = errors.New("corrupt data")

// Store loads and saves one user's snapshot.
type Store interface {
	// Load returns the stored snapshot of user, defaulted, or an empty
	// defaulted snapshot when nothing is stored.
	Load(ctx context.Context, user string) (model.Snapshot, error)
	// Save overwrites the stored snapshot of user.
	Save(ctx context.Context, user string, snap model.Snapshot) error
}

// BaseDir returns the root data directory ($TV_HOME, or ~/.tv).
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tv"), nil
}

// UserOrDefault maps an empty user name to model.DefaultUser.
func UserOrDefault(user string) string {
	if user == "" {
		return model.DefaultUser
	}
	return user
}

// defaulted prepares a loaded snapshot for callers.
func defaulted(user string, snap model.Snapshot) model.Snapshot {
	snap.Normalize()
	snap.Version = model.SnapshotVersion
	snap.User = user
	return snap
}

// stored strips the fields that are implied by the storage key.
func stored(snap model.Snapshot) model.Snapshot {
	cp := snap.Clone()
	cp.Version = 0
	cp.User = ""
	cp.Normalize()
	return cp
}

// writeFileAtomic writes data to a temp file next to path, then renames it.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
