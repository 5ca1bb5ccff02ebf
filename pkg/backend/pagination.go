// Package backend holds the plumbing every store and service shares when
// talking to the hosted database: range-based pagination, the paginated
// response shape, backend error translation and retry with backoff.
package backend

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
	// MaxPage keeps (Page-1)*PageSize well inside int range.
	MaxPage = 1_000_000
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize clamps p to a valid request.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Range returns the inclusive row bounds for the page.
func (p Pagination) Range() (from, to int) {
	p = p.Normalize()
	from = (p.Page - 1) * p.PageSize
	to = from + p.PageSize - 1
	return from, to
}

// Offset is the SQL OFFSET for the page.
func (p Pagination) Offset() int {
	from, _ := p.Range()
	return from
}

// Limit is the SQL LIMIT for the page.
func (p Pagination) Limit() int {
	return p.Normalize().PageSize
}

// Page is one page of results plus the filtered total.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPage shapes rows fetched for p into a response.
func NewPage[T any](data []T, total int, p Pagination) Page[T] {
	p = p.Normalize()
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: TotalPages(total, p.PageSize),
	}
}

// TotalPages is ceil(total/pageSize); zero when there are no rows.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// MapPage converts the rows of a page while keeping its counters.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Data))
	for i, row := range p.Data {
		out[i] = fn(row)
	}
	return Page[U]{
		Data:       out,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
