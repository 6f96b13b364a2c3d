// Package listview implements the paginated list pattern shared by the
// salons, bookings, services and users screens: one scope, one current
// page, server-side filters, and a re-fetch after every mutation.
package listview

import (
	"context"
	"sync"
)

// Filters are forwarded to the backend as query parameters, so a match
// on another page is found without fetching the whole set locally.
type Filters struct {
	Search   string
	Status   string
	Category string
}

// Page is one fetched page plus its pagination metadata.
type Page[T any] struct {
	Items []T
	Total int
	Pages int
}

// FetchFunc loads one page for the controller's scope.
type FetchFunc[T any] func(ctx context.Context, page, limit int, filters Filters) (Page[T], error)

// Controller tracks one paginated collection. Responses are guarded by a
// generation counter: any change of page or filters bumps the generation,
// and a response carrying a stale generation is discarded, so a slow
// earlier fetch can never overwrite a newer one.
type Controller[T any] struct {
	fetch    FetchFunc[T]
	pageSize int

	mu      sync.Mutex
	gen     uint64
	page    int
	filters Filters
	items   []T
	total   int
	pages   int
	loading bool
	lastErr error
}

func New[T any](fetch FetchFunc[T], pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Controller[T]{fetch: fetch, pageSize: pageSize, page: 1}
}

// Load fetches the current page. On error the previously fetched items
// are retained and the error is both stored and returned.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	page := c.page
	filters := c.filters
	c.loading = true
	c.mu.Unlock()

	result, err := c.fetch(ctx, page, c.pageSize, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer fetch superseded this one.
		return nil
	}
	c.loading = false
	if err != nil {
		c.lastErr = err
		return err
	}
	c.lastErr = nil
	c.items = result.Items
	c.total = result.Total
	c.pages = result.Pages
	return nil
}

// SetPage moves to page p (min 1) and re-fetches.
func (c *Controller[T]) SetPage(ctx context.Context, p int) error {
	if p < 1 {
		p = 1
	}
	c.mu.Lock()
	c.page = p
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetFilters replaces the filter set, resets to page 1, and re-fetches.
func (c *Controller[T]) SetFilters(ctx context.Context, f Filters) error {
	c.mu.Lock()
	c.filters = f
	c.page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// Refresh re-fetches the current page. Called after every successful
// create/update/delete so the list reflects last-confirmed server state.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) Pages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pages
}

func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *Controller[T]) PageSize() int { return c.pageSize }

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error from the most recent completed fetch, or nil.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller[T]) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}
