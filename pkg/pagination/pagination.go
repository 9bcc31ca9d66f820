// Package pagination computes the display window for a paginated catalog:
// an ordered run of page buttons with at most one ellipsis marker on each
// side of the current page, plus clamped next/prev transitions.
//
// Everything here is a pure function of its inputs, safe for concurrent use.
package pagination

// Kind discriminates window items.
type Kind int

const (
	// KindPage is an explicit, clickable page number.
	KindPage Kind = iota
	// KindEllipsisStart elides pages between the first page and the
	// window around the current page.
	KindEllipsisStart
	// KindEllipsisEnd elides pages between the window and the last page.
	KindEllipsisEnd
)

// Item is a single entry of the rendered pagination control.
// Page and Current are meaningful only when Kind == KindPage.
type Item struct {
	Kind    Kind
	Page    int
	Current bool
}

// State is the input of a window computation.
// Callers must clamp CurrentPage into [1, TotalPages] before constructing;
// PageSize <= 0 or TotalItems < 0 is a contract violation, not a runtime
// condition this package reports.
type State struct {
	CurrentPage int
	PageSize    int
	TotalItems  int64
}

// TotalPages returns ceil(totalItems/pageSize), floored at 1 so an empty
// result set still renders a single page.
func TotalPages(totalItems int64, pageSize int) int {
	pages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

// TotalPages derives the page count from the state.
func (s State) TotalPages() int {
	return TotalPages(s.TotalItems, s.PageSize)
}

// Window produces the ordered item sequence for the state.
//
// With withEllipsis false the full list [1..totalPages] is returned.
// With it true, page 1, the last page, and the current page with its
// immediate neighbors (window radius 1, fixed) keep explicit numbers;
// every other page is retagged as a start marker when it lies below the
// current page, an end marker otherwise, and adjacent identical markers
// collapse so exactly one remains per contiguous run.
func Window(s State, withEllipsis bool) []Item {
	totalPages := s.TotalPages()
	cur := s.CurrentPage

	if !withEllipsis {
		items := make([]Item, 0, totalPages)
		for page := 1; page <= totalPages; page++ {
			items = append(items, Item{Kind: KindPage, Page: page, Current: page == cur})
		}
		return items
	}

	items := make([]Item, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		if retained(page, cur, totalPages) {
			items = append(items, Item{Kind: KindPage, Page: page, Current: page == cur})
			continue
		}

		kind := KindEllipsisEnd
		if page < cur {
			kind = KindEllipsisStart
		}
		// collapse: one marker per contiguous run
		if n := len(items); n > 0 && items[n-1].Kind == kind {
			continue
		}
		items = append(items, Item{Kind: kind})
	}

	return items
}

// retained reports whether a page keeps its explicit number: the first and
// last pages plus the current page and its direct neighbors.
func retained(page, cur, totalPages int) bool {
	if page == 1 || page == totalPages {
		return true
	}
	return page >= cur-1 && page <= cur+1
}

// Next returns the page after cur, clamped at totalPages. Calling it at the
// last page is a no-op, not an error.
func Next(cur, totalPages int) int {
	if cur >= totalPages {
		return totalPages
	}
	return cur + 1
}

// Prev returns the page before cur, clamped at 1.
func Prev(cur int) int {
	if cur <= 1 {
		return 1
	}
	return cur - 1
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Pager binds a State to a page-change callback so navigation requests
// (item click, next, prev) all funnel through one clamped transition.
type Pager struct {
	state        State
	withEllipsis bool
	onChange     func(page int)
}

// NewPager returns a pager over state. onChange may be nil, in which case
// navigation only reports the target page.
func NewPager(state State, withEllipsis bool, onChange func(page int)) Pager {
	return Pager{state: state, withEllipsis: withEllipsis, onChange: onChange}
}

// Items recomputes the display window. The result is rebuilt on every call;
// identical inputs yield identical sequences.
func (p Pager) Items() []Item {
	return Window(p.state, p.withEllipsis)
}

// TotalPages returns the derived page count.
func (p Pager) TotalPages() int {
	return p.state.TotalPages()
}

// Select requests navigation to page, clamped into range, and returns the
// effective target.
func (p Pager) Select(page int) int {
	target := Clamp(page, p.state.TotalPages())
	if p.onChange != nil {
		p.onChange(target)
	}
	return target
}

// Next advances by one page, clamped at the last page.
func (p Pager) Next() int {
	return p.Select(Next(p.state.CurrentPage, p.state.TotalPages()))
}

// Prev steps back one page, clamped at the first page.
func (p Pager) Prev() int {
	return p.Select(Prev(p.state.CurrentPage))
}
