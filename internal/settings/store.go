// Package settings persists user preference strings and the profile form
// built on top of them.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/config"
	"go.uber.org/zap"
)

// Setting keys.
const (
	KeyHourlyWage       = "userHourlyWage"
	KeyEmployer         = "userEmployer"
	KeyCommunityEnabled = "communityEnabled"
)

// Store is a string-keyed preference store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// GetString returns the stored value for key, or def when absent.
func GetString(s Store, key, def string) (string, error) {
	v, ok, err := s.Get(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// GetBool reads a boolean stored as "true"/"false". Only the exact value
// "false" turns a default-true flag off, and only "true" turns a
// default-false flag on.
func GetBool(s Store, key string, def bool) (bool, error) {
	v, ok, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	if def {
		return v != "false", nil
	}
	return v == "true", nil
}

// CommunityEnabled reports the community feature flag, enabled unless disabled explicitly.
func CommunityEnabled(s Store) (bool, error) {
	return GetBool(s, KeyCommunityEnabled, true)
}

// FileStore keeps settings as a flat JSON object in ~/.shiftshift/settings.json.
type FileStore struct {
	HomeDir string
	Logger  *zap.Logger
}

// NewFileStore returns a settings store rooted at homeDir.
func NewFileStore(homeDir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{HomeDir: homeDir, Logger: logger}
}

// Path returns the path to settings.json.
func Path(homeDir string) string {
	return filepath.Join(config.StateDir(homeDir), "settings.json")
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(Path(s.HomeDir))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return values, nil
}

// Get returns the value for key and whether it was present.
func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, creating the file if needed.
func (s *FileStore) Set(key, value string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	if err := os.MkdirAll(config.StateDir(s.HomeDir), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(Path(s.HomeDir), data, 0644); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Debug("setting saved", zap.String("key", key))
	}
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *FileStore) Keys() ([]string, error) {
	values, err := s.read()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns a store pre-filled with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := &MemoryStore{values: map[string]string{}}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}
