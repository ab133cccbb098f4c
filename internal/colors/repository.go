package colors

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vanari-rv/caravan-configurator/pkg/db"
	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

type Repository interface {
	ListTypes(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.ColorType], error)
	GetType(ctx context.Context, id uuid.UUID) (*models.ColorType, error)
	CreateType(ctx context.Context, colorType *models.ColorType) error
	UpdateType(ctx context.Context, colorType *models.ColorType) error
	DeleteType(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Color], error)
	ListActiveByType(ctx context.Context, typeName string) ([]models.Color, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Color, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]models.Color, error)
	Create(ctx context.Context, color *models.Color) error
	Update(ctx context.Context, color *models.Color) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("colors: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) ListTypes(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.ColorType], error) {
	page, err := db.ListPage[models.ColorType](ctx, r.conn.Model(&models.ColorType{}), params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"name"},
	})
	if err != nil {
		return pagination.Page[models.ColorType]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing color types")
	}
	return page, nil
}

func (r *repository) GetType(ctx context.Context, id uuid.UUID) (*models.ColorType, error) {
	var colorType models.ColorType
	err := r.conn.WithContext(ctx).First(&colorType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "color type not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching color type")
	}
	return &colorType, nil
}

func (r *repository) CreateType(ctx context.Context, colorType *models.ColorType) error {
	if err := r.conn.WithContext(ctx).Create(colorType).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "color type already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating color type")
	}
	return nil
}

func (r *repository) UpdateType(ctx context.Context, colorType *models.ColorType) error {
	result := r.conn.WithContext(ctx).
		Model(&models.ColorType{}).
		Where("id = ?", colorType.ID).
		Updates(map[string]any{"name": colorType.Name})
	if result.Error != nil {
		if db.IsUniqueViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "color type already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating color type")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "color type not found")
	}
	return nil
}

func (r *repository) DeleteType(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.ColorType{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "color type is still referenced by colors")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting color type")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "color type not found")
	}
	return nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Color], error) {
	base := r.conn.Model(&models.Color{}).Preload("ColorType")
	page, err := db.ListPage[models.Color](ctx, base, params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"colors.name", "colors.code"},
	})
	if err != nil {
		return pagination.Page[models.Color]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing colors")
	}
	return page, nil
}

// ListActiveByType feeds the configurator: only active swatches under
// the named grouping, oldest first so display order is stable.
func (r *repository) ListActiveByType(ctx context.Context, typeName string) ([]models.Color, error) {
	var rows []models.Color
	err := r.conn.WithContext(ctx).
		Joins("JOIN color_types ON color_types.id = colors.color_type_id").
		Where("color_types.name = ? AND colors.status = ?", typeName, enums.RecordStatusActive).
		Order("colors.created_at ASC").
		Preload("ColorType").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing colors by type")
	}
	return rows, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.Color, error) {
	var color models.Color
	err := r.conn.WithContext(ctx).Preload("ColorType").First(&color, "colors.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "color not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching color")
	}
	return &color, nil
}

func (r *repository) GetMany(ctx context.Context, ids []uuid.UUID) ([]models.Color, error) {
	if len(ids) == 0 {
		return []models.Color{}, nil
	}
	var rows []models.Color
	err := r.conn.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching colors")
	}
	return rows, nil
}

func (r *repository) Create(ctx context.Context, color *models.Color) error {
	if err := r.conn.WithContext(ctx).Create(color).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "color type does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating color")
	}
	return nil
}

func (r *repository) Update(ctx context.Context, color *models.Color) error {
	updates := map[string]any{
		"name":          color.Name,
		"code":          color.Code,
		"status":        color.Status,
		"color_type_id": color.ColorTypeID,
	}
	if color.Image != nil {
		updates["image"] = *color.Image
	}

	result := r.conn.WithContext(ctx).
		Model(&models.Color{}).
		Where("id = ?", color.ID).
		Updates(updates)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, result.Error, "color type does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating color")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "color not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.Color{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "color is still referenced")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting color")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "color not found")
	}
	return nil
}
