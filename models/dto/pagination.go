package dto

import (
	"github.com/pawhub/pawhub/pkg/pagination"
)

type Pagination struct {
	Total      int64 `json:"total"`
	PageNum    int   `json:"pageNum"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

type PaginationParam struct {
	PageNum      int   `query:"pageNum"`
	PageSize     int   `query:"pageSize" validate:"max=128"`
	WithEllipsis *bool `query:"withEllipsis"`
}

func (a *PaginationParam) GetPageNum() int {
	if a.PageNum < 1 {
		return 1
	}

	return a.PageNum
}

func (a *PaginationParam) GetPageSize() int {
	pageSize := a.PageSize
	if a.PageSize == 0 {
		pageSize = 15
	}

	return pageSize
}

// GetWithEllipsis defaults to true: the browsing UI always renders the
// windowed control unless a caller opts out.
func (a *PaginationParam) GetWithEllipsis() bool {
	if a.WithEllipsis == nil {
		return true
	}

	return *a.WithEllipsis
}

// PageItem is the wire form of one pagination window entry.
// Type is "page", "ellipsis-start" or "ellipsis-end".
type PageItem struct {
	Type    string `json:"type"`
	Page    int    `json:"page,omitempty"`
	Current bool   `json:"current,omitempty"`
}

// NewPageItems maps a computed window onto its wire form.
func NewPageItems(items []pagination.Item) []PageItem {
	out := make([]PageItem, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case pagination.KindEllipsisStart:
			out = append(out, PageItem{Type: "ellipsis-start"})
		case pagination.KindEllipsisEnd:
			out = append(out, PageItem{Type: "ellipsis-end"})
		default:
			out = append(out, PageItem{Type: "page", Page: it.Page, Current: it.Current})
		}
	}

	return out
}

// NewPagination assembles the page metadata block for a query result.
func NewPagination(total int64, param PaginationParam) *Pagination {
	return &Pagination{
		Total:      total,
		PageNum:    param.GetPageNum(),
		PageSize:   param.GetPageSize(),
		TotalPages: pagination.TotalPages(total, param.GetPageSize()),
	}
}

// PageWindow computes the display window for a query result, with the
// requested page clamped into range the way the calculator requires.
func (a *Pagination) PageWindow(withEllipsis bool) []PageItem {
	state := pagination.State{
		CurrentPage: pagination.Clamp(a.PageNum, a.TotalPages),
		PageSize:    a.PageSize,
		TotalItems:  a.Total,
	}

	return NewPageItems(pagination.Window(state, withEllipsis))
}
