package fetch

// PagedList accumulates the pages of one query
type PagedList[T any] struct {
	Items []T
	// Page is the last page folded in
	Page int
	// TotalPages is the provider's page count, 0 when unknown
	TotalPages int
	// LastPageSize is how many records the provider returned for Page,
	// counted before records without an identifier were dropped
	LastPageSize int
}

// MergePages folds a page into the list: page 1 (or lower) replaces, later
// pages append after the existing records. Records rejected by keep never
// reach the list. Duplicates across pages are left alone.
func MergePages[T any](keep func(T) bool) Merger[PagedList[T]] {
	return func(prev PagedList[T], exists bool, next PagedList[T]) PagedList[T] {
		kept := filterItems(next.Items, keep)

		if next.Page <= 1 || !exists {
			next.Items = kept
			return next
		}

		items := make([]T, 0, len(prev.Items)+len(kept))
		items = append(items, prev.Items...)
		items = append(items, kept...)
		next.Items = items
		return next
	}
}

// MergeList replaces the cached list with the filtered new one
func MergeList[T any](keep func(T) bool) Merger[[]T] {
	return func(_ []T, _ bool, next []T) []T {
		return filterItems(next, keep)
	}
}

func filterItems[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Items selects the records accumulated for key. It returns an empty,
// non-nil slice when nothing has been loaded.
func Items[K comparable, T any](key K) Selector[K, PagedList[T], []T] {
	return func(st State[K, PagedList[T]]) []T {
		list, ok := st.Data[key]
		if !ok || list.Items == nil {
			return []T{}
		}
		return list.Items
	}
}

// List selects a plain cached list for key, empty and non-nil when absent
func List[K comparable, T any](key K) Selector[K, []T, []T] {
	return func(st State[K, []T]) []T {
		list, ok := st.Data[key]
		if !ok || list == nil {
			return []T{}
		}
		return list
	}
}

// Progress is what the pagination controller needs to know about a query
type Progress struct {
	Status       Status
	Error        string
	Received     bool
	Count        int
	Page         int
	TotalPages   int
	LastPageSize int
}

// ProgressOf selects the paging progress for key
func ProgressOf[K comparable, T any](key K) Selector[K, PagedList[T], Progress] {
	return func(st State[K, PagedList[T]]) Progress {
		p := Progress{Status: st.Status, Error: st.Error}
		if list, ok := st.Data[key]; ok {
			p.Received = true
			p.Count = len(list.Items)
			p.Page = list.Page
			p.TotalPages = list.TotalPages
			p.LastPageSize = list.LastPageSize
		}
		return p
	}
}
