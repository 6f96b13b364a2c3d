package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetch(items []string, total, pages int) FetchFunc[string] {
	return func(ctx context.Context, page, limit int, filters Filters) (Page[string], error) {
		return Page[string]{Items: items, Total: total, Pages: pages}, nil
	}
}

func TestController_RequestsExactlyTheCurrentPage(t *testing.T) {
	type call struct{ page, limit int }
	var calls []call

	fetch := func(ctx context.Context, page, limit int, filters Filters) (Page[string], error) {
		calls = append(calls, call{page, limit})
		items := make([]string, 0, limit)
		for i := 0; i < limit; i++ {
			items = append(items, fmt.Sprintf("item-%d-%d", page, i))
		}
		return Page[string]{Items: items, Total: 20, Pages: 4}, nil
	}

	ctrl := New(fetch, 6)
	require.NoError(t, ctrl.Load(context.Background()))
	require.NoError(t, ctrl.SetPage(context.Background(), 3))

	require.Len(t, calls, 2)
	assert.Equal(t, call{1, 6}, calls[0])
	assert.Equal(t, call{3, 6}, calls[1])

	// Only the fetched page is ever rendered.
	assert.LessOrEqual(t, len(ctrl.Items()), 6)
	assert.Equal(t, 3, ctrl.Page())
	assert.Equal(t, 4, ctrl.Pages())
	assert.Equal(t, 20, ctrl.Total())
}

func TestController_ErrorRetainsPreviousItems(t *testing.T) {
	fail := false
	fetch := func(ctx context.Context, page, limit int, filters Filters) (Page[string], error) {
		if fail {
			return Page[string]{}, errors.New("backend unavailable")
		}
		return Page[string]{Items: []string{"a", "b"}, Total: 2, Pages: 1}, nil
	}

	ctrl := New(fetch, 10)
	require.NoError(t, ctrl.Load(context.Background()))
	require.Equal(t, []string{"a", "b"}, ctrl.Items())

	fail = true
	require.Error(t, ctrl.Refresh(context.Background()))

	// The stale list is better than an empty screen.
	assert.Equal(t, []string{"a", "b"}, ctrl.Items())
	assert.Error(t, ctrl.Err())

	fail = false
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.NoError(t, ctrl.Err())
}

func TestController_SetFiltersResetsToFirstPage(t *testing.T) {
	var gotPage int
	var gotFilters Filters
	fetch := func(ctx context.Context, page, limit int, filters Filters) (Page[string], error) {
		gotPage = page
		gotFilters = filters
		return Page[string]{}, nil
	}

	ctrl := New(fetch, 10)
	require.NoError(t, ctrl.SetPage(context.Background(), 5))
	require.Equal(t, 5, gotPage)

	require.NoError(t, ctrl.SetFilters(context.Background(), Filters{Search: "spa", Status: "approved"}))
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, "spa", gotFilters.Search)
	assert.Equal(t, "approved", gotFilters.Status)
	assert.Equal(t, 1, ctrl.Page())
}

func TestController_StaleResponseNeverOverwritesNewer(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context, page, limit int, filters Filters) (Page[string], error) {
		if page == 1 {
			close(started)
			<-release
			return Page[string]{Items: []string{"slow-old"}, Total: 1, Pages: 1}, nil
		}
		return Page[string]{Items: []string{"fast-new"}, Total: 1, Pages: 1}, nil
	}

	ctrl := New(fetch, 10)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.Load(context.Background())
	}()

	<-started
	require.NoError(t, ctrl.SetPage(context.Background(), 2))
	require.Equal(t, []string{"fast-new"}, ctrl.Items())

	close(release)
	wg.Wait()

	// The slow page-1 response carried a stale generation and was dropped.
	assert.Equal(t, []string{"fast-new"}, ctrl.Items())
	assert.Equal(t, 2, ctrl.Page())
}

func TestController_LoadingFlagCoversTheFetch(t *testing.T) {
	inFetch := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, page, limit int, filters Filters) (Page[string], error) {
		close(inFetch)
		<-release
		return Page[string]{}, nil
	}

	ctrl := New(fetch, 10)
	done := make(chan struct{})
	go func() {
		_ = ctrl.Load(context.Background())
		close(done)
	}()

	<-inFetch
	assert.True(t, ctrl.Loading())
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("load did not finish")
	}
	assert.False(t, ctrl.Loading())
}

func TestController_DefaultsPageSize(t *testing.T) {
	ctrl := New(staticFetch(nil, 0, 0), 0)
	assert.Equal(t, 10, ctrl.PageSize())
	assert.Equal(t, 1, ctrl.Page())
}
