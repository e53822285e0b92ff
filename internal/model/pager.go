package model

// Pager tracks the visible page of one status's application list. Pages are
// 1-indexed and clamped; navigation past either boundary is a no-op.
type Pager struct {
	Total int // item count
	Size  int // items per page
	Page  int // current page, 1-indexed
}

// NewPager creates a Pager positioned on page 1.
func NewPager(total, size int) Pager {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	return Pager{Total: total, Size: size, Page: 1}
}

// TotalPages returns the page count, never less than 1 even for an empty list.
func (p Pager) TotalPages() int {
	pages := (p.Total + p.Size - 1) / p.Size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp constrains page into [1, TotalPages].
func (p Pager) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if last := p.TotalPages(); page > last {
		return last
	}
	return page
}

// SetPage moves to page (clamped) and reports whether the page changed.
func (p *Pager) SetPage(page int) bool {
	clamped := p.Clamp(page)
	if clamped == p.Page {
		return false
	}
	p.Page = clamped
	return true
}

// Next advances one page; no-op at the last page.
func (p *Pager) Next() bool { return p.SetPage(p.Page + 1) }

// Prev goes back one page; no-op at page 1.
func (p *Pager) Prev() bool { return p.SetPage(p.Page - 1) }

// HasNext reports whether a later page exists.
func (p Pager) HasNext() bool { return p.Page < p.TotalPages() }

// HasPrev reports whether an earlier page exists.
func (p Pager) HasPrev() bool { return p.Page > 1 }

// Bounds returns the half-open item range [start, end) of the current page.
func (p Pager) Bounds() (start, end int) {
	start = (p.Page - 1) * p.Size
	if start > p.Total {
		start = p.Total
	}
	end = start + p.Size
	if end > p.Total {
		end = p.Total
	}
	return start, end
}
