// Package listing implements the in-memory half of a data table: a
// three-state column sort and page controls over an already-fetched slice.
package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SortDirection is the current ordering of a column.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection accepts asc/desc in any case; anything else is SortNone.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc
	case "desc":
		return SortDesc
	default:
		return SortNone
	}
}

// SortState is the active sort key and direction.
type SortState struct {
	Key       string        `json:"key,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// Active reports whether rows should be reordered.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != SortNone
}

// Toggle advances the sort for key. Repeated toggles on the same key cycle
// asc, desc, none; a different key always starts at asc.
func (s SortState) Toggle(key string) SortState {
	if s.Key != key || s.Direction == SortNone {
		return SortState{Key: key, Direction: SortAsc}
	}
	if s.Direction == SortAsc {
		return SortState{Key: key, Direction: SortDesc}
	}
	return SortState{}
}

// Column describes how to read and compare one sortable field of T.
type Column[T any] struct {
	Key      string
	Sortable bool
	Value    func(T) any
	// Compare overrides DefaultCompare for this column.
	Compare func(a, b any) int
}

// Sort returns rows ordered by state. The input slice is never modified;
// with an inactive state or an unknown/unsortable key the copy keeps
// insertion order. The sort is stable.
func Sort[T any](rows []T, columns []Column[T], state SortState) []T {
	out := slices.Clone(rows)
	if !state.Active() {
		return out
	}
	col, ok := findColumn(columns, state.Key)
	if !ok || !col.Sortable || col.Value == nil {
		return out
	}
	compare := col.Compare
	if compare == nil {
		compare = DefaultCompare
	}
	slices.SortStableFunc(out, func(a, b T) int {
		c := compare(col.Value(a), col.Value(b))
		if state.Direction == SortDesc {
			return -c
		}
		return c
	})
	return out
}

func findColumn[T any](columns []Column[T], key string) (Column[T], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// DefaultCompare orders nil first, then numbers, strings, bools and times by
// their natural order. Mixed or unknown types compare by their formatted text.
func DefaultCompare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return compareBool(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case *time.Time:
		if bv, ok := b.(*time.Time); ok {
			return compareTimePtr(av, bv)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
