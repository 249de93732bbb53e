package views

import "github.com/charmbracelet/bubbles/paginator"

// Paginator keeps a row cursor in step with a bubbles paginator.
// The page always contains the cursor.
type Paginator struct {
	pages  paginator.Model
	cursor int
	total  int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	pages := paginator.New()
	pages.Type = paginator.Arabic
	pages.PerPage = pageSize
	return &Paginator{pages: pages}
}

// SetTotal sets the number of rows, clamping the cursor into range
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.syncPages()
	p.SetCursor(p.cursor)
}

// SetPageSize changes the number of rows per page, keeping the cursor visible
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pages.PerPage = size
	p.syncPages()
	p.SetCursor(p.cursor)
}

func (p *Paginator) syncPages() {
	if p.total == 0 {
		p.pages.TotalPages = 1
		return
	}
	p.pages.SetTotalPages(p.total)
}

// PageSize returns the number of rows per page
func (p *Paginator) PageSize() int {
	return p.pages.PerPage
}

// Total returns the number of rows being paged
func (p *Paginator) Total() int {
	return p.total
}

// Cursor returns the absolute row index under the cursor
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor to pos and flips to its page
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(min(pos, p.total-1), 0)
	p.pages.Page = p.cursor / p.pages.PerPage
}

// CursorUp moves the cursor up one row
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor down one row
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// VisibleRange returns the [start, end) rows of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pages.GetSliceBounds(p.total)
}

// CursorInPage returns the cursor position relative to the current page
func (p *Paginator) CursorInPage() int {
	return p.cursor - p.pages.Page*p.pages.PerPage
}

// TotalPages returns the number of pages, at least 1
func (p *Paginator) TotalPages() int {
	return p.pages.TotalPages
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pages.Page + 1
}

// NextPage flips forward and puts the cursor on the first row
func (p *Paginator) NextPage() bool {
	if p.pages.OnLastPage() {
		return false
	}
	p.pages.NextPage()
	p.cursor = p.pages.Page * p.pages.PerPage
	return true
}

// PrevPage flips back and puts the cursor on the first row
func (p *Paginator) PrevPage() bool {
	if p.pages.OnFirstPage() {
		return false
	}
	p.pages.PrevPage()
	p.cursor = p.pages.Page * p.pages.PerPage
	return true
}

// View renders the page indicator, e.g. "2/3"
func (p *Paginator) View() string {
	return p.pages.View()
}
