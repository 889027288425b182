package shared

import "math"

// Pagination contains metadata for paginated listings. The primary list
// routes respond with bare arrays; this envelope is the documented contract
// for callers that need totals.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Envelope wraps a page of items with its pagination metadata.
type Envelope struct {
	Pagination
	Items any `json:"items"`
}

// NewPagination computes pagination metadata.
func NewPagination(page, pageSize, total int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultLimit
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}
