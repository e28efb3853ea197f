package domain

import "math"

// GroupFilter contains filtering/pagination parameters for group listings.
type GroupFilter struct {
	// Page is 1-indexed.
	Page  int
	Limit int
	// CompletedOnly restricts the listing to completed groups.
	CompletedOnly bool
}

// Offset returns the number of rows to skip for the filter's page.
// It saturates at math.MaxInt64 instead of overflowing.
func (f GroupFilter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt64/f.Limit {
		return math.MaxInt64
	}
	return (f.Page - 1) * f.Limit
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NewPagination computes TotalPages as ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// GroupPage is one page of groups with their entries loaded.
type GroupPage struct {
	Groups     []Group
	Pagination Pagination
}
