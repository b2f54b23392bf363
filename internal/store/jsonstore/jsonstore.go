package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/idilsaglam/tada/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// Each key maps to a raw JSON value, so {"todos": [...]} for the todo list.

// FileName is the document created inside the data directory.
const FileName = "tada.json"

type Store struct {
	mu   sync.Mutex
	path string
}

// Open prepares a store rooted at dir. The file is created on first Set.
func Open(dir string) (*Store, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{path: filepath.Join(dir, FileName)}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return []byte(v), nil
}

// Set overwrites key. A value that is not valid JSON is stored as a JSON
// string so the document stays parseable.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	switch {
	case errors.Is(err, store.ErrCorrupt):
		// a corrupt document is replaced rather than blocking writes
		doc = map[string]json.RawMessage{}
	case err != nil:
		return err
	}
	raw := json.RawMessage(value)
	if !json.Valid(value) {
		b, err := json.Marshal(string(value))
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		raw = b
	}
	doc[key] = raw
	return s.write(doc)
}

func (s *Store) Close() error { return nil }

func (s *Store) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", store.ErrCorrupt, err)
	}
	return doc, nil
}

func (s *Store) write(doc map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
