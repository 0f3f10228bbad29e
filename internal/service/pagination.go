package service

// Pagination describes the listing position shown to the blog template.
type Pagination struct {
	Current int
	Paging  int
}

// NewPagination computes the page count as ceil(total/size).
func NewPagination(current int, total int64, size int) Pagination {
	if current < 1 {
		current = 1
	}
	paging := 0
	if size > 0 && total > 0 {
		paging = int((total + int64(size) - 1) / int64(size))
	}
	return Pagination{Current: current, Paging: paging}
}

// PastEnd reports a requested page beyond the last one.
func (p Pagination) PastEnd() bool {
	return p.Paging > 0 && p.Current > p.Paging
}

func (p Pagination) HasPrev() bool {
	return p.Current > 1
}

func (p Pagination) HasNext() bool {
	return p.Current < p.Paging
}

func (p Pagination) Prev() int {
	if p.Current <= 1 {
		return 1
	}
	return p.Current - 1
}

func (p Pagination) Next() int {
	return p.Current + 1
}

// Pages lists every page number from 1 to Paging for link rendering.
func (p Pagination) Pages() []int {
	pages := make([]int, 0, p.Paging)
	for i := 1; i <= p.Paging; i++ {
		pages = append(pages, i)
	}
	return pages
}
