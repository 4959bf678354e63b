package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/parvenuprompting/github-shiftshift-beta/internal/config"
	"github.com/parvenuprompting/github-shiftshift-beta/internal/hashutil"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no session file exists for an ID.
	ErrNotFound = errors.New("session not found")
	// ErrAlreadyRunning is returned when starting a session while another one runs.
	ErrAlreadyRunning = errors.New("a session is already running")
	// ErrNotRunning is returned when stopping without a running session.
	ErrNotRunning = errors.New("no running session")
)

// currentMarker is the on-disk pointer to the active session.
type currentMarker struct {
	SessionID string `json:"session_id"`
}

// FileStore keeps one JSON file per session under ~/.shiftshift/sessions,
// plus the current-session marker and the user record.
type FileStore struct {
	HomeDir string
	Logger  *zap.Logger
}

// NewFileStore returns a store rooted at homeDir. A nil logger discards output.
func NewFileStore(homeDir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{HomeDir: homeDir, Logger: logger}
}

// SessionsDir returns the directory holding the session files.
func SessionsDir(homeDir string) string {
	return filepath.Join(config.StateDir(homeDir), "sessions")
}

// SessionPath returns the filesystem path for a single session file.
func SessionPath(homeDir, id string) string {
	return filepath.Join(SessionsDir(homeDir), id)
}

func currentPath(homeDir string) string {
	return filepath.Join(config.StateDir(homeDir), "current")
}

func userPath(homeDir string) string {
	return filepath.Join(config.StateDir(homeDir), "user.json")
}

func (s *FileStore) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Write stores a session, replacing any previous file with the same ID.
func (s *FileStore) Write(sess Session) error {
	if err := os.MkdirAll(SessionsDir(s.HomeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(SessionPath(s.HomeDir, sess.ID), data, 0644); err != nil {
		return fmt.Errorf("writing session '%s': %w", sess.ID, err)
	}
	s.log().Debug("session written", zap.String("id", sess.ID))
	return nil
}

// Get reads a single session by ID.
func (s *FileStore) Get(id string) (Session, error) {
	data, err := os.ReadFile(SessionPath(s.HomeDir, id))
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	if err != nil {
		return Session{}, fmt.Errorf("reading session '%s': %w", id, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("decoding session '%s': %w", id, err)
	}
	return sess, nil
}

// List returns all sessions ordered by start time, then ID.
func (s *FileStore) List() ([]Session, error) {
	dir := SessionsDir(s.HomeDir)
	files, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sessions []Session
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}

		// Corrupted or partial files shouldn't block reading valid sessions.
		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil || sess.ID == "" {
			s.log().Warn("skipping unreadable session file", zap.String("file", f.Name()))
			continue
		}
		sessions = append(sessions, sess)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if !sessions[i].Start.Equal(sessions[j].Start) {
			return sessions[i].Start.Before(sessions[j].Start)
		}
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}

// Delete removes a session file. Deleting the current session clears the marker.
func (s *FileStore) Delete(id string) error {
	err := os.Remove(SessionPath(s.HomeDir, id))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: '%s'", ErrNotFound, id)
	}
	if err != nil {
		return err
	}

	marker, err := s.readMarker()
	if err != nil {
		return err
	}
	if marker != nil && marker.SessionID == id {
		return s.ClearCurrent()
	}
	return nil
}

// UpdateSessionNotes overwrites the notes of the session with the given ID.
func (s *FileStore) UpdateSessionNotes(id, notes string) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}
	sess.Notes = notes
	return s.Write(sess)
}

// Current returns the active session, or nil when none is tracked.
// A marker pointing at a deleted session counts as none.
func (s *FileStore) Current() (*Session, error) {
	marker, err := s.readMarker()
	if err != nil || marker == nil {
		return nil, err
	}

	sess, err := s.Get(marker.SessionID)
	if errors.Is(err, ErrNotFound) {
		s.log().Warn("current session marker is stale", zap.String("id", marker.SessionID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// SetCurrent marks the session with the given ID as active.
func (s *FileStore) SetCurrent(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	data, err := json.MarshalIndent(currentMarker{SessionID: id}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(config.StateDir(s.HomeDir), 0755); err != nil {
		return err
	}
	return os.WriteFile(currentPath(s.HomeDir), data, 0644)
}

// ClearCurrent forgets the active session.
func (s *FileStore) ClearCurrent() error {
	err := os.Remove(currentPath(s.HomeDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStore) readMarker() (*currentMarker, error) {
	data, err := os.ReadFile(currentPath(s.HomeDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m currentMarker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding current session marker: %w", err)
	}
	if m.SessionID == "" {
		return nil, nil
	}
	return &m, nil
}

// StartSession opens a new session at now and makes it current.
func (s *FileStore) StartSession(now time.Time) (Session, error) {
	cur, err := s.Current()
	if err != nil {
		return Session{}, err
	}
	if cur != nil && cur.Running() {
		return Session{}, fmt.Errorf("%w: '%s'", ErrAlreadyRunning, cur.ID)
	}

	sess := Session{
		ID:        hashutil.NewID("session", now),
		Start:     now.UTC(),
		CreatedAt: now.UTC(),
	}
	if err := s.Write(sess); err != nil {
		return Session{}, err
	}
	if err := s.SetCurrent(sess.ID); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// StopSession closes the current session at now. The session stays current
// so notes typed later that day still land on it.
func (s *FileStore) StopSession(now time.Time) (Session, error) {
	cur, err := s.Current()
	if err != nil {
		return Session{}, err
	}
	if cur == nil || !cur.Running() {
		return Session{}, ErrNotRunning
	}
	if now.Before(cur.Start) {
		return Session{}, fmt.Errorf("stop time %s is before start %s",
			now.Format("15:04"), cur.Start.Format("15:04"))
	}

	end := now.UTC()
	cur.End = &end
	if err := s.Write(*cur); err != nil {
		return Session{}, err
	}
	return *cur, nil
}

// ReadUser returns the stored user, or a zero User when none is stored.
func (s *FileStore) ReadUser() (User, error) {
	data, err := os.ReadFile(userPath(s.HomeDir))
	if errors.Is(err, os.ErrNotExist) {
		return User{}, nil
	}
	if err != nil {
		return User{}, err
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return User{}, fmt.Errorf("decoding user: %w", err)
	}
	return u, nil
}

// UpdateUser stores the username.
func (s *FileStore) UpdateUser(name string) error {
	if err := os.MkdirAll(config.StateDir(s.HomeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(User{Username: name}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(userPath(s.HomeDir), data, 0644); err != nil {
		return err
	}
	s.log().Debug("user updated")
	return nil
}
