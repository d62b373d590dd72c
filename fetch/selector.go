package fetch

// Selector derives a view from a store snapshot
type Selector[K comparable, V any, T any] func(State[K, V]) T

// Select applies sel to the current snapshot of s
func Select[K comparable, P any, V any, T any](s *Store[K, P, V], sel Selector[K, V, T]) T {
	return sel(s.snapshot())
}

// StatusOf selects the lifecycle status
func StatusOf[K comparable, V any]() Selector[K, V, Status] {
	return func(st State[K, V]) Status {
		return st.Status
	}
}

// ErrorOf selects the current error message, empty unless rejected
func ErrorOf[K comparable, V any]() Selector[K, V, string] {
	return func(st State[K, V]) string {
		return st.Error
	}
}

// Info is the status/error pair most callers render
type Info struct {
	Status Status
	Error  string
}

// InfoOf selects status and error together
func InfoOf[K comparable, V any]() Selector[K, V, Info] {
	return func(st State[K, V]) Info {
		return Info{Status: st.Status, Error: st.Error}
	}
}

// Entry selects the cached value for key and whether it exists
func Entry[K comparable, V any](key K) Selector[K, V, Cached[V]] {
	return func(st State[K, V]) Cached[V] {
		v, ok := st.Data[key]
		return Cached[V]{Value: v, OK: ok}
	}
}

// Cached wraps a cache lookup result
type Cached[V any] struct {
	Value V
	OK    bool
}

// Has selects whether key is cached
func Has[K comparable, V any](key K) Selector[K, V, bool] {
	return func(st State[K, V]) bool {
		_, ok := st.Data[key]
		return ok
	}
}

// Len selects the number of cached keys
func Len[K comparable, V any]() Selector[K, V, int] {
	return func(st State[K, V]) int {
		return len(st.Data)
	}
}
