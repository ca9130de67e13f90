package session

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

const (
	// FileName is the session document inside the session directory.
	FileName = "session.json"
	// DefaultDirName is created under the user's home directory.
	DefaultDirName = ".curso-online"
)

// FileStore implements sdk.SessionStore on a JSON file.
// Every mutation rewrites the file through a temp file and rename, so the
// file on disk always holds a complete session.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Ensure FileStore implements sdk.SessionStore at compile time.
var _ sdk.SessionStore = (*FileStore)(nil)

// DefaultDir returns ~/.curso-online.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

// NewFileStore opens the session kept in dir, creating dir when needed.
// An empty dir selects DefaultDir. A missing file is an empty session.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	s := &FileStore{
		path:   filepath.Join(dir, FileName),
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the session file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("corrupted session file %s (invalid JSON): %w", s.path, err)
	}
	for k, v := range values {
		if slices.Contains(sdk.SessionKeys, k) && v != "" {
			s.values[k] = v
		}
	}
	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and persists the session. An empty value removes the key.
func (s *FileStore) Set(key, value string) error {
	if !slices.Contains(sdk.SessionKeys, key) {
		return fmt.Errorf("unknown session key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.values)
	if value == "" {
		delete(next, key)
	} else {
		next[key] = value
	}
	if err := s.write(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Clear deletes the session file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	s.values = make(map[string]string)
	return nil
}

// write replaces the session file atomically.
func (s *FileStore) write(values map[string]string) error {
	if len(values) == 0 {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete session file: %w", err)
		}
		return nil
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp session file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set session file permissions: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
