// Package pagination holds the filtered-list contract shared by every
// repository: 1-based pages, a default size of 10, ascending-id ordering,
// and the two envelope shapes exposed at the boundary.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Params are the universal list parameters. A PerPage of exactly zero is
// honored: the result carries an empty data slice while total is still the
// full filtered count.
type Params struct {
	Page    int
	PerPage int
}

// Normalize clamps the page to 1 and replaces a negative per_page with the
// default. Zero per_page is kept as-is.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 0 {
		p.PerPage = DefaultPerPage
	}
	return p
}

// Offset is the number of rows skipped before the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is the standard list envelope.
type Page[T any] struct {
	Data    []T   `json:"data"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// Legacy is the manufacturer-era envelope kept for existing callers that
// still read current_page/last_page.
type Legacy[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
}

// LastPage is ceil(total/perPage). When perPage is zero no page can ever be
// served, so 0 is returned as the sentinel; callers must not divide by it.
func LastPage(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// NewPage builds the standard envelope from a slice and its full count.
func NewPage[T any](data []T, total int64, p Params) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{Data: data, Total: total, Page: p.Page, PerPage: p.PerPage}
}

// NewLegacy builds the manufacturer envelope.
func NewLegacy[T any](data []T, total int64, p Params) *Legacy[T] {
	if data == nil {
		data = []T{}
	}
	return &Legacy[T]{
		Data:        data,
		Total:       total,
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		LastPage:    LastPage(total, p.PerPage),
	}
}
