// Package store persists composed configurations between runs.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the cache file inside the cache directory.
const FileName = "state.yaml"

// Store implements ports.CacheStore using a single YAML file keyed by
// absolute project directory.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[string]domain.CacheState
}

// DefaultPath returns the cache file location under the user cache directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "lintcfg", FileName)
}

// NewStore creates a Store backed by the file at path.
// A missing or unreadable-as-YAML file starts an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]domain.CacheState),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	// Cache contents are disposable: a file written by another version starts over.
	if err := yaml.Unmarshal(data, &s.entries); err != nil {
		s.entries = make(map[string]domain.CacheState)
	}
	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := yaml.Marshal(s.entries)
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheStoreFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "path", s.path)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "path", s.path)
	}
	return nil
}

// Get returns the cache record stored for dir, or nil if there is none.
func (s *Store) Get(dir string) (*domain.CacheState, error) {
	key, err := projectKey(dir)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// Put records state for dir and writes the file.
func (s *Store) Put(dir string, state *domain.CacheState) error {
	key, err := projectKey(dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = *state
	s.mu.Unlock()

	return s.save()
}

func projectKey(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "dir", dir)
	}
	return abs, nil
}
