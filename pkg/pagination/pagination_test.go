package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(n int) Item     { return Item{Kind: KindPage, Page: n} }
func current(n int) Item  { return Item{Kind: KindPage, Page: n, Current: true} }
func ellipsisStart() Item { return Item{Kind: KindEllipsisStart} }
func ellipsisEnd() Item   { return Item{Kind: KindEllipsisEnd} }

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		want       int
	}{
		{"empty set floors at one page", 0, 10, 1},
		{"exact multiple", 100, 10, 10},
		{"remainder rounds up", 101, 10, 11},
		{"fewer items than a page", 3, 10, 1},
		{"page size one", 7, 1, 7},
		{"catalog scenario 200/18", 200, 18, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalItems, tt.pageSize))
			assert.Equal(t, tt.want, State{CurrentPage: 1, PageSize: tt.pageSize, TotalItems: tt.totalItems}.TotalPages())
		})
	}
}

func TestWindowSinglePage(t *testing.T) {
	s := State{CurrentPage: 1, PageSize: 10, TotalItems: 0}

	for _, withEllipsis := range []bool{true, false} {
		got := Window(s, withEllipsis)
		require.Len(t, got, 1)
		assert.Equal(t, current(1), got[0])
	}
}

func TestWindowWithoutEllipsis(t *testing.T) {
	s := State{CurrentPage: 4, PageSize: 10, TotalItems: 95} // 10 pages

	got := Window(s, false)
	require.Len(t, got, 10)
	for i, it := range got {
		assert.Equal(t, KindPage, it.Kind)
		assert.Equal(t, i+1, it.Page)
		assert.Equal(t, i+1 == 4, it.Current)
	}
}

func TestWindowMiddleOfTenPages(t *testing.T) {
	s := State{CurrentPage: 5, PageSize: 10, TotalItems: 100}

	got := Window(s, true)

	want := []Item{
		page(1),
		ellipsisStart(),
		page(4),
		current(5),
		page(6),
		ellipsisEnd(),
		page(10),
	}
	assert.Equal(t, want, got)
}

func TestWindowThreePagesNeverElides(t *testing.T) {
	for cur := 1; cur <= 3; cur++ {
		s := State{CurrentPage: cur, PageSize: 10, TotalItems: 25}
		require.Equal(t, 3, s.TotalPages())

		got := Window(s, true)
		require.Len(t, got, 3, "currentPage=%d", cur)
		for i, it := range got {
			assert.Equal(t, KindPage, it.Kind)
			assert.Equal(t, i+1, it.Page)
			assert.Equal(t, i+1 == cur, it.Current)
		}
	}
}

func TestWindowFirstPageCatalogScenario(t *testing.T) {
	// totalItems=200, pageSize=18 => 12 pages; from page 1 only the leading
	// edge stays explicit and a single end marker stands in for 3..11.
	s := State{CurrentPage: 1, PageSize: 18, TotalItems: 200}
	require.Equal(t, 12, s.TotalPages())

	got := Window(s, true)

	want := []Item{
		current(1),
		page(2),
		ellipsisEnd(),
		page(12),
	}
	assert.Equal(t, want, got)
}

func TestWindowLastPage(t *testing.T) {
	s := State{CurrentPage: 12, PageSize: 18, TotalItems: 200}

	got := Window(s, true)

	want := []Item{
		page(1),
		ellipsisStart(),
		page(11),
		current(12),
	}
	assert.Equal(t, want, got)
}

func TestWindowMarkerDirections(t *testing.T) {
	// every elided page below the current page collapses into the start
	// marker, everything above into the end marker
	s := State{CurrentPage: 6, PageSize: 1, TotalItems: 20}

	got := Window(s, true)

	want := []Item{
		page(1),
		ellipsisStart(),
		page(5),
		current(6),
		page(7),
		ellipsisEnd(),
		page(20),
	}
	assert.Equal(t, want, got)
}

func TestWindowIdempotent(t *testing.T) {
	s := State{CurrentPage: 5, PageSize: 10, TotalItems: 100}

	first := Window(s, true)
	second := Window(s, true)

	assert.Equal(t, first, second)
}

func TestNextPrevClamping(t *testing.T) {
	assert.Equal(t, 2, Next(1, 10))
	assert.Equal(t, 10, Next(10, 10), "next at last page is a no-op")
	assert.Equal(t, 10, Next(99, 10), "beyond range clamps, no error")

	assert.Equal(t, 4, Prev(5))
	assert.Equal(t, 1, Prev(1), "prev at first page is a no-op")
	assert.Equal(t, 1, Prev(-3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 10))
	assert.Equal(t, 10, Clamp(11, 10))
	assert.Equal(t, 7, Clamp(7, 10))
}

func TestPagerNavigation(t *testing.T) {
	var visited []int
	pager := NewPager(State{CurrentPage: 9, PageSize: 10, TotalItems: 100}, true, func(page int) {
		visited = append(visited, page)
	})

	require.Equal(t, 10, pager.TotalPages())

	assert.Equal(t, 10, pager.Next())
	assert.Equal(t, 8, pager.Prev())
	assert.Equal(t, 3, pager.Select(3))
	assert.Equal(t, 10, pager.Select(42), "out-of-range selection clamps")
	assert.Equal(t, 1, pager.Select(0))

	assert.Equal(t, []int{10, 8, 3, 10, 1}, visited)
}

func TestPagerNextAtBoundaryIsNoop(t *testing.T) {
	pager := NewPager(State{CurrentPage: 10, PageSize: 10, TotalItems: 100}, true, nil)
	assert.Equal(t, 10, pager.Next())

	pager = NewPager(State{CurrentPage: 1, PageSize: 10, TotalItems: 100}, true, nil)
	assert.Equal(t, 1, pager.Prev())
}

func TestPagerItemsMatchWindow(t *testing.T) {
	s := State{CurrentPage: 3, PageSize: 20, TotalItems: 144}
	pager := NewPager(s, true, nil)

	assert.Equal(t, Window(s, true), pager.Items())
}
