package categories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vanari-rv/caravan-configurator/pkg/db"
	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

type Repository interface {
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Category], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("categories: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Category], error) {
	page, err := db.ListPage[models.Category](ctx, r.conn.Model(&models.Category{}), params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"name"},
	})
	if err != nil {
		return pagination.Page[models.Category]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	return page, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.conn.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching category")
	}
	return &category, nil
}

func (r *repository) Create(ctx context.Context, category *models.Category) error {
	if err := r.conn.WithContext(ctx).Create(category).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating category")
	}
	return nil
}

func (r *repository) Update(ctx context.Context, category *models.Category) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{"name": category.Name})
	if result.Error != nil {
		if db.IsUniqueViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "category already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating category")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "category is still referenced by vehicle models")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting category")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}
