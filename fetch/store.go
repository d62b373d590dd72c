package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Fetcher performs the network call behind a store
type Fetcher[K comparable, P any, V any] func(ctx context.Context, key K, params P) (V, error)

// Option configures a Store
type Option[K comparable, P any, V any] func(*Store[K, P, V])

// WithMerge sets how a fetched value is combined with the cached one
func WithMerge[K comparable, P any, V any](merge Merger[V]) Option[K, P, V] {
	return func(s *Store[K, P, V]) {
		if merge != nil {
			s.merge = merge
		}
	}
}

// WithFallback sets the error message used when a failure carries none
func WithFallback[K comparable, P any, V any](msg string) Option[K, P, V] {
	return func(s *Store[K, P, V]) {
		if msg != "" {
			s.fallback = msg
		}
	}
}

// WithLogger sets the logger for lifecycle transitions
func WithLogger[K comparable, P any, V any](logger zerolog.Logger) Option[K, P, V] {
	return func(s *Store[K, P, V]) {
		s.logger = logger
	}
}

// Store runs the idle/loading/received/rejected lifecycle for one resource.
// Reads go through Select; there are no direct getters.
type Store[K comparable, P any, V any] struct {
	name     string
	fetch    Fetcher[K, P, V]
	merge    Merger[V]
	fallback string
	logger   zerolog.Logger

	mu     sync.Mutex
	state  State[K, V]
	tokens map[K]uint64
}

// New creates a store around fetch
func New[K comparable, P any, V any](name string, fetch Fetcher[K, P, V], opts ...Option[K, P, V]) *Store[K, P, V] {
	s := &Store[K, P, V]{
		name:     name,
		fetch:    fetch,
		merge:    Replace[V],
		fallback: DefaultFallback,
		logger:   zerolog.Nop(),
		state:    initialState[K, V](),
		tokens:   make(map[K]uint64),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches key and folds the outcome into the store. It never returns
// an error: failures become a rejected state with a message. A response that
// arrives after a newer load for the same key was issued is dropped.
func (s *Store[K, P, V]) Load(ctx context.Context, key K, params P) {
	s.mu.Lock()
	s.tokens[key]++
	token := s.tokens[key]
	s.state = pending(s.state)
	s.mu.Unlock()

	s.logger.Debug().
		Str("store", s.name).
		Str("key", fmt.Sprint(key)).
		Msg("Load started")

	value, err := s.call(ctx, key, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens[key] != token {
		s.logger.Debug().
			Str("store", s.name).
			Str("key", fmt.Sprint(key)).
			Msg("Discarding stale response")
		return
	}

	if err != nil {
		msg := Message(err, s.fallback)
		s.state = rejected(s.state, msg)
		s.logger.Warn().
			Err(err).
			Str("store", s.name).
			Str("key", fmt.Sprint(key)).
			Msg("Load rejected")
		return
	}

	s.state = fulfilled(s.state, key, value, s.merge)
	s.logger.Debug().
		Str("store", s.name).
		Str("key", fmt.Sprint(key)).
		Msg("Load received")
}

// call runs the fetcher, turning a panic into an ordinary failure
func (s *Store[K, P, V]) call(ctx context.Context, key K, params P) (value V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return s.fetch(ctx, key, params)
}

// Reset drops all cached data and returns the store to idle.
// Loads still in flight are discarded when they complete.
func (s *Store[K, P, V]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.tokens {
		s.tokens[key]++
	}
	s.state = initialState[K, V]()
}

func (s *Store[K, P, V]) snapshot() State[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
