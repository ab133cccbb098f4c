package pagination

// Page-number pagination. Every list endpoint shares the same envelope so
// clients never have to special-case response shapes per resource.

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 10
	// MaxPerPage caps how many rows any page query can request.
	MaxPerPage = 100
)

// Params holds page pagination inputs from controllers.
type Params struct {
	Page    int
	PerPage int
}

// Normalize enforces the configured defaults and bounds.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	norm := p.Normalize()
	return (norm.Page - 1) * norm.PerPage
}

// Page is the canonical list envelope: rows plus bookkeeping fields.
type Page[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

// NewPage assembles the envelope, deriving last_page from the total count.
func NewPage[T any](rows []T, total int64, params Params) Page[T] {
	norm := params.Normalize()
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{
		Data:        rows,
		Total:       total,
		PerPage:     norm.PerPage,
		CurrentPage: norm.Page,
		LastPage:    lastPage(total, norm.PerPage),
	}
}

func lastPage(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 1
	}
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return pages
}
