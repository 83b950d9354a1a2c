// Package pagination slices an ordered list into fixed-size, 1-indexed pages.
package pagination

type Paginator[T any] struct {
	items    []T
	pageSize int
	current  int
}

// New creates a paginator positioned on page 1. A non-positive pageSize is
// treated as 1.
func New[T any](items []T, pageSize int) *Paginator[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator[T]{
		items:    items,
		pageSize: pageSize,
		current:  1,
	}
}

// TotalPages is at least 1, even for an empty source.
func (p *Paginator[T]) TotalPages() int {
	pages := (len(p.items) + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (p *Paginator[T]) CurrentPage() int {
	return p.current
}

// Page returns the slice for the current page.
func (p *Paginator[T]) Page() []T {
	start := (p.current - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// GoToPage clamps n into [1, TotalPages].
func (p *Paginator[T]) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	if total := p.TotalPages(); n > total {
		n = total
	}
	p.current = n
}

func (p *Paginator[T]) NextPage() {
	p.GoToPage(p.current + 1)
}

func (p *Paginator[T]) PrevPage() {
	p.GoToPage(p.current - 1)
}

func (p *Paginator[T]) HasNextPage() bool {
	return p.current < p.TotalPages()
}

func (p *Paginator[T]) HasPrevPage() bool {
	return p.current > 1
}

// SetItems replaces the source and re-clamps the current page so a shrunken
// source cannot leave the paginator past the last page.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	p.GoToPage(p.current)
}

// Reset replaces the source and returns to page 1.
func (p *Paginator[T]) Reset(items []T) {
	p.items = items
	p.current = 1
}
