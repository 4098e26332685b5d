package api

import "testing"

func TestListQueryValues(t *testing.T) {
	t.Run("defaults serialize fully", func(t *testing.T) {
		q := DefaultListQuery()
		v := q.Values()
		if v.Get("page") != "1" || v.Get("limit") != "20" || v.Get("sortBy") != "createdAt" || v.Get("order") != "desc" {
			t.Errorf("unexpected values: %v", v)
		}
	})

	t.Run("zero fields are omitted", func(t *testing.T) {
		q := ListQuery{Page: 3}
		v := q.Values()
		if v.Get("page") != "3" {
			t.Errorf("page = %q", v.Get("page"))
		}
		for _, key := range []string{"limit", "sortBy", "order"} {
			if _, ok := v[key]; ok {
				t.Errorf("expected %s to be omitted", key)
			}
		}
	})

	t.Run("empty query encodes to nothing", func(t *testing.T) {
		if got := (ListQuery{}).Encode(); got != "" {
			t.Errorf("Encode() = %q, want empty", got)
		}
	})
}
