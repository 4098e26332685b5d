// Package listctl implements the paginated list-fetching state machine shared
// by the video feed, the management dashboard, and analytics.
//
// A [Controller] owns the current [api.ListQuery], the last fetched page, and
// a loading/error state. Every fetch is stamped with an increasing sequence
// id; a response is applied only when its id matches the latest issued, so an
// older request that completes late can never overwrite a newer one's result.
// Issuing a new fetch also cancels the previous one's context.
package listctl

import (
	"context"
	"sync"

	"github.com/desertthunder/beatly/internal/api"
)

// Status enumerates the controller lifecycle.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

// Page is the materialized result of one fetch: the items plus paging
// metadata. Superseded wholesale on the next applied fetch.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalCount  int
}

// Fetcher retrieves one page for the given query.
type Fetcher[T any] func(ctx context.Context, q api.ListQuery) (*Page[T], error)

// ParamPatch is a partial update to the query. Nil fields are left unchanged.
type ParamPatch struct {
	Page   *int
	Limit  *int
	SortBy *string
	Order  *api.SortOrder
}

// Controller drives paginated fetching for one collection endpoint.
//
// All methods are called from the UI loop; the mutex only guards the sequence
// counter and cancel func, which a completing fetch goroutine also touches.
type Controller[T any] struct {
	fetch Fetcher[T]

	status Status
	params api.ListQuery
	result *Page[T]
	errMsg string

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// New creates a controller with the server-default query.
func New[T any](fetch Fetcher[T]) *Controller[T] {
	return &Controller[T]{
		fetch:  fetch,
		status: Idle,
		params: api.DefaultListQuery(),
	}
}

// Status returns the current lifecycle state.
func (c *Controller[T]) Status() Status { return c.status }

// Params returns a snapshot of the current query.
func (c *Controller[T]) Params() api.ListQuery { return c.params }

// Result returns the last applied page, or nil before the first success.
func (c *Controller[T]) Result() *Page[T] { return c.result }

// Err returns the display message from the last failure, or empty.
func (c *Controller[T]) Err() string { return c.errMsg }

// SetParams merges a partial update into the query.
//
// Changing the sort key, order, or page size invalidates the meaning of the
// current page, so any of those resets Page to 1. A patch that only moves the
// page leaves everything else untouched.
func (c *Controller[T]) SetParams(patch ParamPatch) {
	reordered := false

	if patch.Limit != nil && *patch.Limit != c.params.Limit {
		c.params.Limit = *patch.Limit
		reordered = true
	}
	if patch.SortBy != nil && *patch.SortBy != c.params.SortBy {
		c.params.SortBy = *patch.SortBy
		reordered = true
	}
	if patch.Order != nil && *patch.Order != c.params.Order {
		c.params.Order = *patch.Order
		reordered = true
	}

	if reordered {
		c.params.Page = 1
	} else if patch.Page != nil {
		c.params.Page = *patch.Page
	}
}

// SetPage navigates to page n, clamped to [1, totalPages].
func (c *Controller[T]) SetPage(n int) {
	c.SetParams(ParamPatch{Page: IntPtr(c.clamp(n))})
}

func (c *Controller[T]) clamp(n int) int {
	if n < 1 {
		n = 1
	}
	if c.result != nil && c.result.TotalPages > 0 && n > c.result.TotalPages {
		n = c.result.TotalPages
	}
	return n
}

// totalPages reports the last known page count (1 before any fetch).
func (c *Controller[T]) totalPages() int {
	if c.result == nil || c.result.TotalPages < 1 {
		return 1
	}
	return c.result.TotalPages
}

// HasPrevious reports whether backward navigation is possible.
func (c *Controller[T]) HasPrevious() bool { return c.params.Page > 1 }

// HasNext reports whether forward navigation is possible.
func (c *Controller[T]) HasNext() bool { return c.params.Page < c.totalPages() }

// First navigates to the first page; a no-op at the boundary.
func (c *Controller[T]) First() { c.SetPage(1) }

// Previous navigates one page back; a no-op at the boundary.
func (c *Controller[T]) Previous() {
	if c.HasPrevious() {
		c.SetPage(c.params.Page - 1)
	}
}

// Next navigates one page forward; a no-op at the boundary.
func (c *Controller[T]) Next() {
	if c.HasNext() {
		c.SetPage(c.params.Page + 1)
	}
}

// Last navigates to the last known page; a no-op at the boundary.
func (c *Controller[T]) Last() { c.SetPage(c.totalPages()) }

// Completion carries a finished fetch back to the controller. Opaque to
// callers beyond handing it to [Controller.Apply].
type Completion[T any] struct {
	seq  uint64
	page *Page[T]
	err  error
}

// Fetch transitions to Loading, cancels any in-flight fetch, and returns a
// function that performs the request. The caller runs it (directly, or inside
// a tea.Cmd) and feeds the completion to [Controller.Apply].
func (c *Controller[T]) Fetch(ctx context.Context) func() Completion[T] {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.status = Loading
	params := c.params

	return func() Completion[T] {
		page, err := c.fetch(fetchCtx, params)
		return Completion[T]{seq: seq, page: page, err: err}
	}
}

// Apply installs a completed fetch unless a newer fetch has been issued
// since; stale completions are discarded and the current state stands.
// Reports whether the completion was applied.
func (c *Controller[T]) Apply(done Completion[T]) bool {
	c.mu.Lock()
	latest := c.seq
	c.mu.Unlock()

	if done.seq != latest {
		return false
	}

	if done.err != nil {
		c.status = Failed
		c.errMsg = api.ErrorMessage(done.err)
		return true
	}

	c.status = Ready
	c.result = done.page
	c.errMsg = ""

	// The server clamps out-of-range pages; follow its word.
	if done.page != nil && done.page.CurrentPage > 0 {
		c.params.Page = done.page.CurrentPage
	}

	return true
}

// StrPtr is a convenience for building a [ParamPatch] sort key.
func StrPtr(s string) *string { return &s }

// OrderPtr is a convenience for building a [ParamPatch] sort order.
func OrderPtr(o api.SortOrder) *api.SortOrder { return &o }

// IntPtr is a convenience for building a [ParamPatch] page or limit.
func IntPtr(n int) *int { return &n }
