package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

// ListOptions shapes a paginated query. SearchColumns are matched
// case-insensitively against the search term with OR semantics.
type ListOptions struct {
	Search        string
	SearchColumns []string
	Order         string
}

// ListPage runs the count plus page query every admin table shares.
// The base query arrives with any model, joins, and preloads already
// applied so each repository only describes what is unique about it.
func ListPage[T any](ctx context.Context, base *gorm.DB, params pagination.Params, opts ListOptions) (pagination.Page[T], error) {
	params = params.Normalize()

	query := base.WithContext(ctx)
	query = applySearch(query, opts)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return pagination.Page[T]{}, fmt.Errorf("counting rows: %w", err)
	}

	order := opts.Order
	if order == "" {
		order = "created_at DESC"
	}

	var rows []T
	err := query.
		Order(order).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return pagination.Page[T]{}, fmt.Errorf("listing rows: %w", err)
	}

	return pagination.NewPage(rows, total, params), nil
}

func applySearch(query *gorm.DB, opts ListOptions) *gorm.DB {
	term := strings.TrimSpace(opts.Search)
	if term == "" || len(opts.SearchColumns) == 0 {
		return query
	}

	pattern := "%" + strings.ToLower(term) + "%"
	clauses := make([]string, 0, len(opts.SearchColumns))
	args := make([]any, 0, len(opts.SearchColumns))
	for _, col := range opts.SearchColumns {
		// LOWER + LIKE works on both postgres and the sqlite test driver.
		clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", col))
		args = append(args, pattern)
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}
