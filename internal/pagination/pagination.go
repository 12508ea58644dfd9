// Package pagination holds the page request/response envelope shared by list
// endpoints.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// DefaultPageSize is used when a request does not set page_size.
const DefaultPageSize = 20

// PageRequest holds pagination parameters parsed from query strings.
//
// Before switches to keyset paging: only rows whose id sorts below it are
// returned and Page is ignored. It relies on ids that sort by creation time
// and on the query ordering by id descending.
type PageRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Before   string `form:"before" binding:"omitempty,uuid"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
}

// Offset returns the SQL OFFSET for the current page. Keyset requests never
// skip rows.
func (p *PageRequest) Offset() int {
	if p.Before != "" {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	// NextBefore is the cursor for the following keyset page, empty on the last one.
	NextBefore string `json:"next_before,omitempty"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// WithCursor sets NextBefore from the id of the last item when the page is
// full, so a client can keep paging with ?before=.
func (r PageResponse[T]) WithCursor(id func(T) string) PageResponse[T] {
	if len(r.Data) > 0 && len(r.Data) == r.PageSize {
		r.NextBefore = id(r.Data[len(r.Data)-1])
	}
	return r
}

// Paginate returns a GORM scope that applies the keyset bound, OFFSET and
// LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if req.Before != "" {
			db = db.Where("id < ?", req.Before)
		}
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
