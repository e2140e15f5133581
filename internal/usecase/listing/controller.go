// Package listing implements the paginated, filterable list state
// shared by every entity screen of the console.
package listing

import (
	"context"
	"strings"
	"sync"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MatchFunc reports whether an item matches a quick search query.
// Implementations compare the item's display fields, case folded by
// the controller beforehand.
type MatchFunc[T any] func(item T, query string) bool

// Controller owns the list state of one screen: current page, page
// size, active server-side filter, quick search text and the last
// page of records fetched. Every state change that affects the
// effective query triggers a reload.
//
// Overlapping reloads are legal; each one is tagged with a sequence
// number and a response that is no longer current is discarded, so
// the visible page always reflects the newest request.
type Controller[T any] struct {
	mu sync.Mutex

	gateway domain.Lister[T]
	match   MatchFunc[T]
	logger  *logger.Logger

	page        int
	pageSize    int
	sizeChoices []int

	filterKind  domain.FilterKind
	filterValue string
	quickSearch string

	items         []T
	totalElements int64
	loading       bool
	seq           uint64
}

// NewController creates a list controller with the default page size
// of 10 and selectable sizes {5, 10, 25}. A nil match function makes
// the quick search inert.
func NewController[T any](gw domain.Lister[T], match MatchFunc[T], log *logger.Logger) *Controller[T] {
	return &Controller[T]{
		gateway:     gw,
		match:       match,
		logger:      log,
		pageSize:    10,
		sizeChoices: []int{5, 10, 25},
	}
}

// ConfigurePageSizes overrides the default page size and choices.
func (c *Controller[T]) ConfigurePageSizes(size int, choices []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size > 0 {
		c.pageSize = size
	}
	if len(choices) > 0 {
		c.sizeChoices = choices
	}
}

// SetFilter replaces the active server-side filter, resets the page
// to 0 and reloads. The quick search is cleared: the two filtering
// paths are mutually exclusive.
func (c *Controller[T]) SetFilter(ctx context.Context, kind domain.FilterKind, value string) error {
	c.mu.Lock()
	c.filterKind = kind
	c.filterValue = value
	c.quickSearch = ""
	c.page = 0
	c.mu.Unlock()
	return c.Reload(ctx)
}

// ClearFilter removes the server-side filter and reloads from page 0.
func (c *Controller[T]) ClearFilter(ctx context.Context) error {
	return c.SetFilter(ctx, domain.FilterNone, "")
}

// SetPage moves to another page of the current query and reloads.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return c.Reload(ctx)
}

// SetPageSize changes the page size, resets the page to 0 and
// reloads. The previous page index is meaningless under a new size.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		return c.Reload(ctx)
	}
	c.mu.Lock()
	c.pageSize = size
	c.page = 0
	c.mu.Unlock()
	return c.Reload(ctx)
}

// Reload fetches the current page from the gateway. Plain paginated
// listing when no filter is active, the matching search otherwise,
// never the unpaginated list. On failure the previously loaded items
// and total stay visible and the error is returned to the caller.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.seq++
	seq := c.seq
	kind := c.filterKind
	value := c.filterValue
	req := domain.PageRequest{Page: c.page, Size: c.pageSize}
	c.mu.Unlock()

	var (
		result domain.Page[T]
		err    error
	)
	if kind == domain.FilterNone {
		result, err = c.gateway.ListPage(ctx, req)
	} else {
		result, err = c.gateway.Search(ctx, kind, value, req)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// A newer reload has been issued; this response is stale.
		return nil
	}
	c.loading = false

	if err != nil {
		c.logger.WithError(err).Warn("List reload failed",
			zap.String("filter", string(kind)),
			zap.Int("page", req.Page),
			zap.Int("size", req.Size))
		return err
	}

	c.items = result.Content
	c.totalElements = result.TotalElements
	return nil
}

// SetQuickSearch updates the in-memory quick search text. It has no
// effect while a server-side filter is active.
func (c *Controller[T]) SetQuickSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filterKind != domain.FilterNone {
		return
	}
	c.quickSearch = query
}

// QuickSearchEnabled reports whether the quick search applies. It is
// disabled whenever a server-side filter is active, so a partially
// loaded page is never silently narrowed further.
func (c *Controller[T]) QuickSearchEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filterKind == domain.FilterNone && c.match != nil
}

// VisibleItems returns the rows to render: the loaded page, narrowed
// by the quick search when one is active.
func (c *Controller[T]) VisibleItems() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := strings.ToLower(strings.TrimSpace(c.quickSearch))
	if query == "" || c.filterKind != domain.FilterNone || c.match == nil {
		return append([]T(nil), c.items...)
	}

	filtered := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.match(item, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Items returns the last loaded page unfiltered.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// TotalElements returns the total record count of the current query.
func (c *Controller[T]) TotalElements() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalElements
}

// Page returns the current page index.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the current page size.
func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// PageSizeChoices returns the selectable page sizes.
func (c *Controller[T]) PageSizeChoices() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.sizeChoices...)
}

// Filter returns the active server-side filter.
func (c *Controller[T]) Filter() (domain.FilterKind, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filterKind, c.filterValue
}

// IsLoading reports whether a reload is outstanding.
func (c *Controller[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
