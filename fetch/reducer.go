package fetch

import "maps"

// State is an immutable snapshot of a store. Data is never mutated once a
// snapshot has been published; reducers copy it before writing.
type State[K comparable, V any] struct {
	Status Status
	Error  string
	Data   map[K]V
}

// Merger combines a freshly fetched value with the cached one for the same key.
type Merger[V any] func(prev V, exists bool, next V) V

// Replace is the default merger: the newest value wins.
func Replace[V any](_ V, _ bool, next V) V {
	return next
}

func initialState[K comparable, V any]() State[K, V] {
	return State[K, V]{
		Status: StatusIdle,
		Data:   map[K]V{},
	}
}

func pending[K comparable, V any](st State[K, V]) State[K, V] {
	st.Status = StatusLoading
	st.Error = ""
	return st
}

func fulfilled[K comparable, V any](st State[K, V], key K, next V, merge Merger[V]) State[K, V] {
	prev, exists := st.Data[key]

	data := maps.Clone(st.Data)
	if data == nil {
		data = make(map[K]V, 1)
	}
	data[key] = merge(prev, exists, next)

	st.Status = StatusReceived
	st.Error = ""
	st.Data = data
	return st
}

func rejected[K comparable, V any](st State[K, V], msg string) State[K, V] {
	st.Status = StatusRejected
	st.Error = msg
	return st
}
