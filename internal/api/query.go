package api

import (
	"net/url"
	"strconv"
)

// SortOrder is the direction of a collection sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery carries the pagination and sort parameters for a collection fetch.
type ListQuery struct {
	Page   int
	Limit  int
	SortBy string
	Order  SortOrder
}

// DefaultListQuery mirrors the server's defaults: newest first, twenty per page.
func DefaultListQuery() ListQuery {
	return ListQuery{Page: 1, Limit: 20, SortBy: "createdAt", Order: SortDesc}
}

// Values serializes the query as URL parameters. Only truthy values are
// included; the server applies its own defaults for the rest.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", string(q.Order))
	}
	return v
}

// Encode renders the query string without a leading "?"; empty when every
// field is zero.
func (q ListQuery) Encode() string {
	return q.Values().Encode()
}
