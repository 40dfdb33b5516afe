package models

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPageMeta builds the pagination envelope. totalPages is ceil(total/limit).
func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Offset returns the number of rows to skip for a 1-based page. A page too
// far out to address saturates at math.MaxInt, which yields no rows.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
