package browse

import (
	"errors"
	"slices"
	"sync"
)

// ErrUnauthorized is returned by favourites operations before login
var ErrUnauthorized = errors.New("login required")

// Favourites is an insertion-ordered set of IMDb ids
type Favourites struct {
	mu  sync.RWMutex
	ids []string
}

// Add inserts id; adding a present id is a no-op. It reports whether the
// set changed.
func (f *Favourites) Add(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == "" || slices.Contains(f.ids, id) {
		return false
	}
	f.ids = append(f.ids, id)
	return true
}

// Remove deletes id; removing an absent id is a no-op. It reports whether
// the set changed.
func (f *Favourites) Remove(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.Index(f.ids, id)
	if i < 0 {
		return false
	}
	f.ids = slices.Delete(slices.Clone(f.ids), i, i+1)
	return true
}

// Contains reports whether id is a favourite
func (f *Favourites) Contains(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Contains(f.ids, id)
}

// List returns the ids in insertion order, empty and non-nil when there
// are none
func (f *Favourites) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

// Len returns the number of favourites
func (f *Favourites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ids)
}
