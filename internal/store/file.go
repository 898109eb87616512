package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// FileStore persists the whole table as one JSON document on every
// mutation, standing in for the browser's local storage between runs.
// The call-site contract stays error-free; write failures are kept
// aside and surfaced through Err.
type FileStore struct {
	path string

	mu  sync.Mutex
	m   map[string]string
	err error
}

// OpenFileStore loads the table from path. A missing file starts empty;
// an unreadable or malformed file is an error, since silently dropping
// a user's whole session is worse than refusing to start.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, m: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.m); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}
	if s.m == nil {
		s.m = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[key]
	return v, ok
}

func (s *FileStore) Set(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = value
	s.persistLocked()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	s.persistLocked()
}

// Err returns the last write failure, if any.
func (s *FileStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *FileStore) persistLocked() {
	raw, err := json.MarshalIndent(s.m, "", "  ")
	if err != nil {
		s.err = err
		return
	}
	s.err = os.WriteFile(s.path, raw, 0o644)
}
