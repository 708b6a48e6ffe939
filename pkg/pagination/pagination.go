// Package pagination provides offset-based pagination helpers shared by all
// list endpoints.
package pagination

// DefaultLimit is applied when the caller sends no or an out-of-range limit.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Meta describes one page of a larger result set.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Page is a slice of results plus its pagination metadata.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// Normalize clamps page and limit to usable values.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset returns the row offset for a normalized page/limit pair.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewMeta computes the metadata for one page of total rows.
func NewMeta(page, limit, total int) Meta {
	totalPages := (total + limit - 1) / limit
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// NewPage bundles data with its metadata.
func NewPage[T any](data []T, page, limit, total int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{Data: data, Pagination: NewMeta(page, limit, total)}
}
