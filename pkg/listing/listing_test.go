package listing

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"coreid/pkg/backend"
)

type row struct {
	Name    string
	Score   int
	Joined  time.Time
	Missing *time.Time
}

var columns = []Column[row]{
	{Key: "name", Sortable: true, Value: func(r row) any { return r.Name }},
	{Key: "score", Sortable: true, Value: func(r row) any { return r.Score }},
	{Key: "joined", Sortable: true, Value: func(r row) any { return r.Joined }},
	{Key: "locked", Sortable: false, Value: func(r row) any { return r.Name }},
}

type SortSuite struct {
	suite.Suite
	rows []row
}

func TestSortSuite(t *testing.T) {
	suite.Run(t, new(SortSuite))
}

func (s *SortSuite) SetupTest() {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.rows = []row{
		{Name: "carol", Score: 7, Joined: base.Add(48 * time.Hour)},
		{Name: "alice", Score: 3, Joined: base},
		{Name: "bob", Score: 7, Joined: base.Add(24 * time.Hour)},
		{Name: "dave", Score: 1, Joined: base.Add(72 * time.Hour)},
	}
}

func (s *SortSuite) TestToggleCycle() {
	s.Run("same key cycles asc desc none", func() {
		state := SortState{}
		state = state.Toggle("name")
		s.Equal(SortAsc, state.Direction)
		state = state.Toggle("name")
		s.Equal(SortDesc, state.Direction)
		state = state.Toggle("name")
		s.False(state.Active())
		state = state.Toggle("name")
		s.Equal(SortAsc, state.Direction)
	})

	s.Run("new key starts at asc", func() {
		state := SortState{Key: "name", Direction: SortDesc}.Toggle("score")
		s.Equal(SortState{Key: "score", Direction: SortAsc}, state)
	})
}

func (s *SortSuite) TestSortDirections() {
	s.Run("asc is non decreasing", func() {
		sorted := Sort(s.rows, columns, SortState{Key: "score", Direction: SortAsc})
		for i := 1; i < len(sorted); i++ {
			s.LessOrEqual(sorted[i-1].Score, sorted[i].Score)
		}
	})

	s.Run("desc is non increasing", func() {
		sorted := Sort(s.rows, columns, SortState{Key: "score", Direction: SortDesc})
		for i := 1; i < len(sorted); i++ {
			s.GreaterOrEqual(sorted[i-1].Score, sorted[i].Score)
		}
	})

	s.Run("ties keep insertion order", func() {
		sorted := Sort(s.rows, columns, SortState{Key: "score", Direction: SortDesc})
		s.Equal("carol", sorted[0].Name)
		s.Equal("bob", sorted[1].Name)
	})

	s.Run("third toggle restores insertion order", func() {
		state := SortState{}.Toggle("name").Toggle("name").Toggle("name")
		s.Equal(s.rows, Sort(s.rows, columns, state))
	})

	s.Run("input is not modified", func() {
		before := append([]row(nil), s.rows...)
		_ = Sort(s.rows, columns, SortState{Key: "name", Direction: SortAsc})
		s.Equal(before, s.rows)
	})

	s.Run("unsortable column keeps order", func() {
		s.Equal(s.rows, Sort(s.rows, columns, SortState{Key: "locked", Direction: SortAsc}))
	})

	s.Run("times sort chronologically", func() {
		sorted := Sort(s.rows, columns, SortState{Key: "joined", Direction: SortAsc})
		s.Equal([]string{"alice", "bob", "carol", "dave"}, names(sorted))
	})
}

func (s *SortSuite) TestRandomizedOrdering() {
	rng := rand.New(rand.NewSource(42))
	for range 50 {
		rows := make([]row, rng.Intn(30))
		for i := range rows {
			rows[i] = row{Name: string(rune('a' + rng.Intn(26))), Score: rng.Intn(10)}
		}
		for _, key := range []string{"name", "score"} {
			col, _ := findColumn(columns, key)
			asc := Sort(rows, columns, SortState{Key: key, Direction: SortAsc})
			desc := Sort(rows, columns, SortState{Key: key, Direction: SortDesc})
			for i := 1; i < len(rows); i++ {
				s.LessOrEqual(DefaultCompare(col.Value(asc[i-1]), col.Value(asc[i])), 0)
				s.GreaterOrEqual(DefaultCompare(col.Value(desc[i-1]), col.Value(desc[i])), 0)
			}
		}
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestDefaultCompare(t *testing.T) {
	assert.Equal(t, 0, DefaultCompare(3, 3))
	assert.Equal(t, -1, DefaultCompare(2, 3))
	assert.Equal(t, 1, DefaultCompare("b", "a"))
	assert.Equal(t, -1, DefaultCompare(nil, "a"))
	assert.Equal(t, 1, DefaultCompare(true, false))
	assert.Equal(t, -1, DefaultCompare(int64(1), 2.5))
	now := time.Now()
	assert.Equal(t, 1, DefaultCompare(&now, nil))
}

func TestControls(t *testing.T) {
	t.Run("example pager", func(t *testing.T) {
		c := Controls{Page: 2, PageSize: 10, Total: 23}
		assert.Equal(t, "Showing 11 to 20 of 23 results", c.Summary())
		assert.Equal(t, 3, c.TotalPages())
		assert.True(t, c.HasPrev())
		assert.True(t, c.HasNext())
	})

	t.Run("range matches triple for every page", func(t *testing.T) {
		for total := 1; total <= 57; total++ {
			for _, size := range []int{1, 5, 10, 25} {
				c := Controls{PageSize: size, Total: total}
				for page := 1; page <= c.TotalPages(); page++ {
					c.Page = page
					assert.Equal(t, (page-1)*size+1, c.From())
					assert.Equal(t, min(page*size, total), c.To())
					assert.LessOrEqual(t, c.From(), c.To())
				}
			}
		}
	})

	t.Run("last page has no next", func(t *testing.T) {
		c := Controls{Page: 3, PageSize: 10, Total: 23}
		assert.Equal(t, "Showing 21 to 23 of 23 results", c.Summary())
		assert.False(t, c.HasNext())
	})

	t.Run("page past the end shows no range", func(t *testing.T) {
		c := Controls{Page: 5, PageSize: 10, Total: 23}
		assert.Equal(t, 0, c.From())
		assert.Equal(t, 0, c.To())
		assert.Equal(t, "Showing 0 of 23 results", c.Summary())
		assert.True(t, c.HasPrev())
		assert.False(t, c.HasNext())
	})

	t.Run("huge page does not go negative", func(t *testing.T) {
		c := Controls{Page: math.MaxInt64 / 5, PageSize: 50, Total: 23}
		assert.Equal(t, 0, c.From())
		assert.Equal(t, "Showing 0 of 23 results", c.Summary())
	})

	t.Run("empty result", func(t *testing.T) {
		c := Controls{Page: 1, PageSize: 10}
		assert.Equal(t, "No results", c.Summary())
		assert.False(t, c.HasPrev())
		assert.False(t, c.HasNext())
	})

	t.Run("controls for page", func(t *testing.T) {
		p := backend.NewPage([]int{1}, 23, backend.Pagination{Page: 2, PageSize: 10})
		assert.Equal(t, Controls{Page: 2, PageSize: 10, Total: 23}, ControlsFor(p))
	})
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{1, 2, 3}, Paginate(rows, 1, 3))
	assert.Equal(t, []int{7}, Paginate(rows, 3, 3))
	assert.Empty(t, Paginate(rows, 4, 3))
	assert.NotPanics(t, func() {
		assert.Empty(t, Paginate(rows, math.MaxInt64/5, 50))
	})
	assert.Equal(t, []int{1, 2, 3}, Paginate(rows, -4, 3))
}

func TestTableView(t *testing.T) {
	table := Table[row]{
		Columns:  columns,
		Sort:     SortState{Key: "score", Direction: SortAsc},
		Page:     1,
		PageSize: 2,
	}
	base := time.Now()
	rows := []row{{Name: "x", Score: 5, Joined: base}, {Name: "y", Score: 1, Joined: base}, {Name: "z", Score: 3, Joined: base}}
	view, controls := table.View(rows)
	require.Len(t, view, 2)
	assert.Equal(t, []string{"y", "z"}, names(view))
	assert.Equal(t, "Showing 1 to 2 of 3 results", controls.Summary())
}

func TestView(t *testing.T) {
	p := backend.NewPage([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, 23, backend.Pagination{Page: 2, PageSize: 10})
	v := View(p)
	assert.Equal(t, "Showing 11 to 20 of 23 results", v.Summary)
	assert.True(t, v.HasPrev)
	assert.True(t, v.HasNext)
	assert.Equal(t, 3, v.TotalPages)

	last := View(backend.NewPage([]int{21, 22, 23}, 23, backend.Pagination{Page: 3, PageSize: 10}))
	assert.False(t, last.HasNext)
	assert.Equal(t, "Showing 21 to 23 of 23 results", last.Summary)

	empty := View(backend.Page[int]{})
	require.NotNil(t, empty.Data)
	assert.Equal(t, "No results", empty.Summary)
	assert.False(t, empty.HasPrev)
}

func TestTableRender(t *testing.T) {
	base := time.Now()
	rows := []row{{Name: "x", Score: 5, Joined: base}, {Name: "y", Score: 1, Joined: base}, {Name: "z", Score: 3, Joined: base}}

	t.Run("headers carry the next toggle", func(t *testing.T) {
		view := Table[row]{Columns: columns, Sort: SortState{Key: "score", Direction: SortAsc}, Page: 2, PageSize: 2}.Render(rows)
		assert.Equal(t, []string{"x"}, names(view.Data))
		assert.Equal(t, "Showing 3 to 3 of 3 results", view.Summary)
		assert.True(t, view.HasPrev)
		assert.Equal(t, 2, view.TotalPages)
		require.Len(t, view.Columns, len(columns))

		score := view.Columns[1]
		assert.Equal(t, SortAsc, score.Direction)
		assert.Equal(t, &SortState{Key: "score", Direction: SortDesc}, score.Next)

		name := view.Columns[0]
		assert.Equal(t, SortNone, name.Direction)
		assert.Equal(t, &SortState{Key: "name", Direction: SortAsc}, name.Next)

		assert.Nil(t, view.Columns[3].Next)
	})

	t.Run("unsortable key is reported as no sort", func(t *testing.T) {
		view := Table[row]{Columns: columns, Sort: SortState{Key: "locked", Direction: SortDesc}}.Render(rows)
		assert.Equal(t, SortState{}, view.Sort)
		assert.Equal(t, []string{"x", "y", "z"}, names(view.Data))
		assert.Equal(t, &SortState{Key: "name", Direction: SortAsc}, view.Columns[0].Next)
		assert.Empty(t, view.Columns[3].Direction)
	})
}
