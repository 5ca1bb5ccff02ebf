package listing

import (
	"fmt"

	"coreid/pkg/backend"
)

// Controls is the state behind a table's pager.
type Controls struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// ControlsFor builds pager state from a fetched page.
func ControlsFor[T any](p backend.Page[T]) Controls {
	return Controls{Page: p.Page, PageSize: p.PageSize, Total: p.Total}
}

func (c Controls) TotalPages() int {
	return backend.TotalPages(c.Total, c.PageSize)
}

// InRange reports whether the page holds at least one row.
func (c Controls) InRange() bool {
	return c.Page >= 1 && c.Page <= c.TotalPages()
}

// From is the 1-based index of the first row shown, or 0 when the page is
// empty.
func (c Controls) From() int {
	if !c.InRange() {
		return 0
	}
	return (c.Page-1)*c.PageSize + 1
}

// To is the 1-based index of the last row shown, or 0 when the page is empty.
func (c Controls) To() int {
	if !c.InRange() {
		return 0
	}
	return min(c.Page*c.PageSize, c.Total)
}

func (c Controls) HasPrev() bool {
	return c.Page > 1
}

func (c Controls) HasNext() bool {
	return c.Page < c.TotalPages()
}

// Summary renders the pager caption.
func (c Controls) Summary() string {
	if c.Total == 0 {
		return "No results"
	}
	if !c.InRange() {
		return fmt.Sprintf("Showing 0 of %d results", c.Total)
	}
	return fmt.Sprintf("Showing %d to %d of %d results", c.From(), c.To(), c.Total)
}

// Paginate returns the rows on page (1-based) of an in-memory slice.
func Paginate[T any](rows []T, page, pageSize int) []T {
	p := backend.Pagination{Page: page, PageSize: pageSize}.Normalize()
	if p.Page > backend.TotalPages(len(rows), p.PageSize) {
		return []T{}
	}
	from, to := p.Range()
	end := min(to+1, len(rows))
	return rows[from:end]
}

// Table sorts and pages rows the way a client-side data table does.
type Table[T any] struct {
	Columns  []Column[T]
	Sort     SortState
	Page     int
	PageSize int
}

// View applies the sort then slices out the current page.
func (t Table[T]) View(rows []T) ([]T, Controls) {
	sorted := Sort(rows, t.Columns, t.Sort)
	p := backend.Pagination{Page: t.Page, PageSize: t.PageSize}.Normalize()
	return Paginate(sorted, p.Page, p.PageSize), Controls{Page: p.Page, PageSize: p.PageSize, Total: len(rows)}
}

// Header is one column heading. Next is the sort a click on it requests.
type Header struct {
	Key       string        `json:"key"`
	Sortable  bool          `json:"sortable"`
	Direction SortDirection `json:"direction,omitempty"`
	Next      *SortState    `json:"next,omitempty"`
}

// TableView is one rendered page of a Table.
type TableView[T any] struct {
	PageView[T]
	Sort    SortState `json:"sort"`
	Columns []Header  `json:"columns"`
}

// Render sorts and pages rows and describes the headings. A sort on an
// unknown or unsortable key is reported as no sort.
func (t Table[T]) Render(rows []T) TableView[T] {
	state := t.applied()
	data, c := t.View(rows)
	headers := make([]Header, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = Header{Key: col.Key, Sortable: col.Sortable}
		if !col.Sortable {
			continue
		}
		if state.Key == col.Key {
			headers[i].Direction = state.Direction
		}
		next := state.Toggle(col.Key)
		headers[i].Next = &next
	}
	page := backend.Page[T]{Data: data, Total: c.Total, Page: c.Page, PageSize: c.PageSize, TotalPages: c.TotalPages()}
	return TableView[T]{PageView: View(page), Sort: state, Columns: headers}
}

func (t Table[T]) applied() SortState {
	if !t.Sort.Active() {
		return SortState{}
	}
	col, ok := findColumn(t.Columns, t.Sort.Key)
	if !ok || !col.Sortable || col.Value == nil {
		return SortState{}
	}
	return t.Sort
}

// PageView is a fetched page plus the pager caption a table renders under it.
type PageView[T any] struct {
	backend.Page[T]
	Summary string `json:"summary"`
	HasPrev bool   `json:"hasPrev"`
	HasNext bool   `json:"hasNext"`
}

// View decorates p with its pager state.
func View[T any](p backend.Page[T]) PageView[T] {
	c := ControlsFor(p)
	if p.Data == nil {
		p.Data = []T{}
	}
	return PageView[T]{Page: p, Summary: c.Summary(), HasPrev: c.HasPrev(), HasNext: c.HasNext()}
}
