package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketPrefs = []byte("prefs")

const keyTheme = "theme"

// ErrClosed is returned after Close
var ErrClosed = errors.New("preference store is closed")

// Store keeps user preferences in a BoltDB file. A store opened with an
// empty path keeps them in memory only.
type Store struct {
	db *bolt.DB

	mu     sync.RWMutex
	mem    map[string]string
	closed bool
}

// Open opens or creates the preference file at path
func Open(path string) (*Store, error) {
	if path == "" {
		return &Store{mem: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPrefs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preference bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the file
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrClosed
	}
	if s.db == nil {
		v, ok := s.mem[key]
		return v, ok, nil
	}

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketPrefs).Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, found, nil
}

// Set stores value under key
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.db == nil {
		s.mem[key] = value
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPrefs).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Theme returns the saved theme name, or fallback when none is saved
func (s *Store) Theme(fallback string) (string, error) {
	v, ok, err := s.Get(keyTheme)
	if err != nil {
		return fallback, err
	}
	if !ok || v == "" {
		return fallback, nil
	}
	return v, nil
}

// SetTheme saves the theme name
func (s *Store) SetTheme(name string) error {
	return s.Set(keyTheme, name)
}
