package backend

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Filter accumulates WHERE conditions with positional arguments.
//
//	var f backend.Filter
//	f.Where("status = ANY(" + f.Array(statuses) + ")")
//	rows, err := db.QueryContext(ctx, "SELECT ... FROM t"+f.SQL(), f.Args()...)
type Filter struct {
	conds []string
	args  []any
}

// Arg binds v and returns its placeholder.
func (f *Filter) Arg(v any) string {
	f.args = append(f.args, v)
	return fmt.Sprintf("$%d", len(f.args))
}

// Array binds a text array and returns its placeholder cast to text[].
func (f *Filter) Array(values []string) string {
	return f.Arg(pq.Array(values)) + "::text[]"
}

// Where adds a condition; conditions are ANDed.
func (f *Filter) Where(cond string) {
	f.conds = append(f.conds, cond)
}

// Search adds an OR of ILIKE matches of term against columns. Blank terms
// add nothing.
func (f *Filter) Search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return
	}
	p := f.Arg(LikePattern(term))
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE " + p
	}
	f.Where("(" + strings.Join(parts, " OR ") + ")")
}

// SQL renders " WHERE a AND b", or "" with no conditions.
func (f *Filter) SQL() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// Args returns the bound arguments.
func (f *Filter) Args() []any {
	return f.args
}

// Page appends LIMIT/OFFSET placeholders for p and returns the clause.
func (f *Filter) Page(p Pagination) string {
	p = p.Normalize()
	return " LIMIT " + f.Arg(p.Limit()) + " OFFSET " + f.Arg(p.Offset())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps term for a contains match with wildcards escaped.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// ActiveValues drops blanks and the "all" sentinel used by list filters.
func ActiveValues(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && v != "all" {
			out = append(out, v)
		}
	}
	return out
}
