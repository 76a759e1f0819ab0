package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// DataFile is the file name used by JSONStore inside its directory.
const DataFile = "data.json"

// JSONStore implements Store using JSON file persistence.
// Every Set rewrites the whole file.
type JSONStore struct {
	mu     sync.RWMutex
	path   string
	data   map[string]string
	closed bool
}

// NewJSONStore creates a new JSON file-based store in dir.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	s := &JSONStore{
		path: filepath.Join(dir, DataFile),
		data: make(map[string]string),
	}

	// Load existing data if file exists
	if _, err := os.Stat(s.path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// load reads data from the JSON file.
func (s *JSONStore) load() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, &s.data); err != nil {
		return err
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return nil
}

// save writes data to the JSON file via a temp file and rename.
func (s *JSONStore) save() error {
	content, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Get returns the value stored under key.
func (s *JSONStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key and flushes the file. On a failed flush the
// previous value is kept.
func (s *JSONStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	prev, had := s.data[key]
	s.data[key] = value
	if err := s.save(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// Close marks the store closed. Data is already on disk.
func (s *JSONStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
