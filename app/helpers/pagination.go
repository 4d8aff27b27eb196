package helpers

import "strconv"

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ParsePage reads a 1-based page number from a query value, treating
// anything malformed or below 1 as page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate computes the page metadata for a fixed page size. Offset
// is (page-1)*perPage, clamped so an out-of-range page returns the
// empty tail rather than an error.
func Paginate(total int64, page, perPage int) Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
