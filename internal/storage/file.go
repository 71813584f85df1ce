package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// dataFile is the on-disk layout: every user's snapshot in one document.
type dataFile struct {
	Users map[string]model.Snapshot `json:"users"`
}

// FileStore keeps all users in a single JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFileStore returns a store backed by the JSON file at path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the data file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) read() (dataFile, error) {
	df := dataFile{Users: map[string]model.Snapshot{}}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return df, nil
	}
	if err != nil {
		return df, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &df); err != nil {
		// Back up the corrupt file so the next save starts clean.
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		s.logger.Warn("corrupt data file backed up", "path", s.path, "backup", backupPath)
		return dataFile{}, fmt.Errorf("%w in %s (backed up to %s): %v", ErrCorrupt, s.path, backupPath, err)
	}
	if df.Users == nil {
		df.Users = map[string]model.Snapshot{}
	}
	return df, nil
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context, user string) (model.Snapshot, error) {
	user = UserOrDefault(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	df, err := s.read()
	if err != nil {
		return model.Snapshot{}, err
	}
	return defaulted(user, df.Users[user]), nil
}

// Save implements Store.
func (s *FileStore) Save(_ context.Context, user string, snap model.Snapshot) error {
	user = UserOrDefault(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	df, err := s.read()
	if err != nil {
		return err
	}
	df.Users[user] = stored(snap)
	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Debug("saved snapshot", "user", user, "path", s.path)
	return nil
}
