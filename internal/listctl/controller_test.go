package listctl

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/desertthunder/beatly/internal/api"
)

func pageOf(items []string, current, total, count int) *Page[string] {
	return &Page[string]{Items: items, CurrentPage: current, TotalPages: total, TotalCount: count}
}

func staticFetcher(page *Page[string], err error) Fetcher[string] {
	return func(ctx context.Context, q api.ListQuery) (*Page[string], error) {
		return page, err
	}
}

func TestControllerParams(t *testing.T) {
	t.Run("starts with server defaults", func(t *testing.T) {
		c := New(staticFetcher(nil, nil))
		p := c.Params()
		if p.Page != 1 || p.Limit != 20 || p.SortBy != "createdAt" || p.Order != api.SortDesc {
			t.Errorf("unexpected defaults: %+v", p)
		}
		if c.Status() != Idle {
			t.Errorf("Status = %v, want Idle", c.Status())
		}
	})

	t.Run("sort change resets to page one", func(t *testing.T) {
		c := New(staticFetcher(pageOf(nil, 3, 5, 90), nil))
		c.SetPage(3)

		c.SetParams(ParamPatch{SortBy: StrPtr("views")})
		if c.Params().Page != 1 {
			t.Errorf("Page = %d, want 1 after sort change", c.Params().Page)
		}
		if c.Params().SortBy != "views" {
			t.Errorf("SortBy = %q", c.Params().SortBy)
		}
	})

	t.Run("order change resets to page one", func(t *testing.T) {
		c := New(staticFetcher(nil, nil))
		c.SetPage(2)
		c.SetParams(ParamPatch{Order: OrderPtr(api.SortAsc)})
		if c.Params().Page != 1 {
			t.Errorf("Page = %d, want 1 after order change", c.Params().Page)
		}
	})

	t.Run("limit change resets to page one", func(t *testing.T) {
		c := New(staticFetcher(nil, nil))
		c.SetPage(4)
		c.SetParams(ParamPatch{Limit: IntPtr(50)})
		if c.Params().Page != 1 || c.Params().Limit != 50 {
			t.Errorf("unexpected params: %+v", c.Params())
		}
	})

	t.Run("same sort value keeps the page", func(t *testing.T) {
		c := New(staticFetcher(nil, nil))
		c.SetPage(2)
		c.SetParams(ParamPatch{SortBy: StrPtr("createdAt")})
		if c.Params().Page != 2 {
			t.Errorf("Page = %d, want 2 when sort is unchanged", c.Params().Page)
		}
	})

	t.Run("page-only patch moves the page", func(t *testing.T) {
		c := New(staticFetcher(nil, nil))
		c.SetParams(ParamPatch{Page: IntPtr(5)})
		// No result yet, so pagination is unknown and page 5 is taken on faith.
		if c.Params().Page != 5 {
			t.Errorf("Page = %d, want 5", c.Params().Page)
		}
	})
}

func TestControllerPaging(t *testing.T) {
	ready := func(t *testing.T, current, total int) *Controller[string] {
		t.Helper()
		c := New(staticFetcher(pageOf([]string{"a"}, current, total, total*20), nil))
		done := c.Fetch(context.Background())()
		if !c.Apply(done) {
			t.Fatal("expected completion to apply")
		}
		return c
	}

	t.Run("clamps to the known page range", func(t *testing.T) {
		c := ready(t, 2, 4)
		c.SetPage(99)
		if c.Params().Page != 4 {
			t.Errorf("Page = %d, want 4", c.Params().Page)
		}
		c.SetPage(0)
		if c.Params().Page != 1 {
			t.Errorf("Page = %d, want 1", c.Params().Page)
		}
	})

	t.Run("navigation helpers respect bounds", func(t *testing.T) {
		c := ready(t, 2, 4)
		if !c.HasPrevious() || !c.HasNext() {
			t.Error("expected both directions from the middle")
		}

		c.First()
		if c.Params().Page != 1 || c.HasPrevious() {
			t.Errorf("after First: page %d", c.Params().Page)
		}

		c.Last()
		if c.Params().Page != 4 || c.HasNext() {
			t.Errorf("after Last: page %d", c.Params().Page)
		}

		c.Next()
		if c.Params().Page != 4 {
			t.Errorf("Next past the end moved to %d", c.Params().Page)
		}

		c.Previous()
		if c.Params().Page != 3 {
			t.Errorf("Previous moved to %d", c.Params().Page)
		}
	})

	t.Run("adopts the server's reported page", func(t *testing.T) {
		c := New(staticFetcher(pageOf(nil, 2, 2, 30), nil))
		c.SetParams(ParamPatch{Page: IntPtr(9)})
		done := c.Fetch(context.Background())()
		c.Apply(done)
		if c.Params().Page != 2 {
			t.Errorf("Page = %d, want the server's 2", c.Params().Page)
		}
	})
}

func TestControllerFetch(t *testing.T) {
	t.Run("success transitions to Ready", func(t *testing.T) {
		c := New(staticFetcher(pageOf([]string{"a", "b"}, 1, 1, 2), nil))

		run := c.Fetch(context.Background())
		if c.Status() != Loading {
			t.Errorf("Status = %v, want Loading", c.Status())
		}

		if !c.Apply(run()) {
			t.Fatal("expected completion to apply")
		}
		if c.Status() != Ready {
			t.Errorf("Status = %v, want Ready", c.Status())
		}
		if got := c.Result(); got == nil || len(got.Items) != 2 {
			t.Errorf("unexpected result: %+v", got)
		}
		if c.Err() != "" {
			t.Errorf("Err = %q, want empty", c.Err())
		}
	})

	t.Run("failure transitions to Failed with a message", func(t *testing.T) {
		c := New(staticFetcher(nil, errors.New("boom")))
		if !c.Apply(c.Fetch(context.Background())()) {
			t.Fatal("expected completion to apply")
		}
		if c.Status() != Failed {
			t.Errorf("Status = %v, want Failed", c.Status())
		}
		if c.Err() == "" {
			t.Error("expected an error message")
		}
	})

	t.Run("stale completion is discarded", func(t *testing.T) {
		calls := atomic.Int32{}
		c := New(func(ctx context.Context, q api.ListQuery) (*Page[string], error) {
			n := calls.Add(1)
			if n == 1 {
				return pageOf([]string{"old"}, 1, 1, 1), nil
			}
			return pageOf([]string{"new"}, 1, 1, 1), nil
		})

		first := c.Fetch(context.Background())
		second := c.Fetch(context.Background())

		// The newer fetch lands first; the older one arrives afterwards.
		newer := second()
		older := first()

		if !c.Apply(newer) {
			t.Fatal("expected the newer completion to apply")
		}
		if c.Apply(older) {
			t.Error("expected the stale completion to be discarded")
		}
		if got := c.Result().Items[0]; got != "new" {
			t.Errorf("Result = %q, want the newer page", got)
		}
		if c.Status() != Ready {
			t.Errorf("Status = %v, want Ready", c.Status())
		}
	})

	t.Run("stale failure does not disturb current state", func(t *testing.T) {
		c := New(staticFetcher(pageOf([]string{"ok"}, 1, 1, 1), nil))
		first := c.Fetch(context.Background())
		firstDone := first()

		second := c.Fetch(context.Background())
		if c.Apply(firstDone) {
			t.Error("expected the superseded completion to be discarded")
		}
		if !c.Apply(second()) {
			t.Fatal("expected the current completion to apply")
		}
		if c.Status() != Ready {
			t.Errorf("Status = %v, want Ready", c.Status())
		}
	})

	t.Run("new fetch cancels the previous context", func(t *testing.T) {
		started := make(chan struct{})
		cancelled := make(chan struct{})

		c := New(func(ctx context.Context, q api.ListQuery) (*Page[string], error) {
			select {
			case <-started:
				// Second call returns immediately.
				return pageOf(nil, 1, 1, 0), nil
			default:
			}
			close(started)
			select {
			case <-ctx.Done():
				close(cancelled)
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return nil, errors.New("never cancelled")
			}
		})

		first := c.Fetch(context.Background())
		go first()

		<-started
		second := c.Fetch(context.Background())
		second()

		select {
		case <-cancelled:
		case <-time.After(2 * time.Second):
			t.Fatal("expected the first fetch's context to be cancelled")
		}
	})
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Idle:    "idle",
		Loading: "loading",
		Ready:   "ready",
		Failed:  "failed",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}
