package fetch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	IMDb string
}

func hasIMDb(r record) bool { return r.IMDb != "" }

func page(n, total int, ids ...int) PagedList[record] {
	items := make([]record, 0, len(ids))
	for _, id := range ids {
		items = append(items, record{ID: id, IMDb: fmt.Sprintf("tt%07d", id)})
	}
	return PagedList[record]{Items: items, Page: n, TotalPages: total, LastPageSize: len(items)}
}

func newPagedStore(pages map[int]PagedList[record]) *Store[string, int, PagedList[record]] {
	return New("paged", func(ctx context.Context, key string, n int) (PagedList[record], error) {
		return pages[n], nil
	}, WithMerge[string, int](MergePages(hasIMDb)))
}

func TestMergePages_ReplaceThenAppend(t *testing.T) {
	ctx := context.Background()
	store := newPagedStore(map[int]PagedList[record]{
		1: page(1, 3, 1, 2, 3),
		2: page(2, 3, 4, 5),
	})

	store.Load(ctx, "q", 1)
	store.Load(ctx, "q", 2)

	got := Select(store, Items[string, record]("q"))
	require.Len(t, got, 5)
	for i, r := range got {
		assert.Equal(t, i+1, r.ID, "page 1 records must precede page 2 records")
	}

	store.Load(ctx, "q", 1)
	assert.Len(t, Select(store, Items[string, record]("q")), 3, "page 1 replaces")
}

func TestMergePages_DropsRecordsWithoutIdentifier(t *testing.T) {
	ctx := context.Background()
	first := page(1, 2, 1, 2)
	first.Items = append(first.Items, record{ID: 99})
	first.LastPageSize = 3

	second := page(2, 2, 3)
	second.Items = append([]record{{ID: 100}}, second.Items...)

	store := newPagedStore(map[int]PagedList[record]{1: first, 2: second})

	store.Load(ctx, "q", 1)
	progress := Select(store, ProgressOf[string, record]("q"))
	assert.Equal(t, 2, progress.Count)
	assert.Equal(t, 3, progress.LastPageSize)

	store.Load(ctx, "q", 2)
	got := Select(store, Items[string, record]("q"))
	require.Len(t, got, 3)
	for _, r := range got {
		assert.NotEmpty(t, r.IMDb)
	}
}

func TestMergePages_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := New("paged", func(ctx context.Context, key string, n int) (PagedList[record], error) {
		if key == "a" {
			return page(n, 1, 1, 2), nil
		}
		return page(n, 1, 7), nil
	}, WithMerge[string, int](MergePages(hasIMDb)))

	store.Load(ctx, "a", 1)
	store.Load(ctx, "b", 1)

	assert.Len(t, Select(store, Items[string, record]("a")), 2)
	assert.Len(t, Select(store, Items[string, record]("b")), 1)
}

func TestMergePages_AppendWithoutPriorPageReplaces(t *testing.T) {
	merge := MergePages(hasIMDb)
	got := merge(PagedList[record]{}, false, page(2, 3, 4))
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Page)
}

func TestMergeList(t *testing.T) {
	merge := MergeList(hasIMDb)
	got := merge([]record{{ID: 1, IMDb: "tt1"}}, true, []record{{ID: 2}, {ID: 3, IMDb: "tt3"}})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestEmptySelectorsAreNonNil(t *testing.T) {
	paged := newPagedStore(nil)
	items := Select(paged, Items[string, record]("missing"))
	assert.NotNil(t, items)
	assert.Empty(t, items)

	plain := New("plain", func(ctx context.Context, key string, _ struct{}) ([]record, error) {
		return nil, nil
	})
	list := Select(plain, List[string, record]("missing"))
	assert.NotNil(t, list)
	assert.Empty(t, list)

	progress := Select(paged, ProgressOf[string, record]("missing"))
	assert.False(t, progress.Received)
	assert.Equal(t, StatusIdle, progress.Status)
}
