package options

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
	ListCategories(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.OptionCategory], error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.OptionCategory, error)
	CreateCategory(ctx context.Context, category *models.OptionCategory) error
	UpdateCategory(ctx context.Context, category *models.OptionCategory) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.AdditionalOption], error)
	ListForModel(ctx context.Context, modelID uuid.UUID, optionType enums.OptionType) ([]models.AdditionalOption, error)
	Get(ctx context.Context, id uuid.UUID) (*models.AdditionalOption, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]models.AdditionalOption, error)
	Create(ctx context.Context, option *models.AdditionalOption) error
	Update(ctx context.Context, option *models.AdditionalOption) error
	Delete(ctx context.Context, id uuid.UUID) error
	SyncCategoryName(ctx context.Context, categoryID uuid.UUID, name string) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("options: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) ListCategories(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.OptionCategory], error) {
	page, err := db.ListPage[models.OptionCategory](ctx, r.conn.Model(&models.OptionCategory{}), params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"name"},
	})
	if err != nil {
		return pagination.Page[models.OptionCategory]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing option categories")
	}
	return page, nil
}

func (r *repository) GetCategory(ctx context.Context, id uuid.UUID) (*models.OptionCategory, error) {
	var category models.OptionCategory
	err := r.conn.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "option category not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching option category")
	}
	return &category, nil
}

func (r *repository) CreateCategory(ctx context.Context, category *models.OptionCategory) error {
	if err := r.conn.WithContext(ctx).Create(category).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating option category")
	}
	return nil
}

func (r *repository) UpdateCategory(ctx context.Context, category *models.OptionCategory) error {
	result := r.conn.WithContext(ctx).
		Model(&models.OptionCategory{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{"name": category.Name, "type": category.Type})
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating option category")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "option category not found")
	}
	return nil
}

func (r *repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.OptionCategory{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "option category is still referenced by options")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting option category")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "option category not found")
	}
	return nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.AdditionalOption], error) {
	base := r.conn.Model(&models.AdditionalOption{}).Preload("VehicleModel")
	page, err := db.ListPage[models.AdditionalOption](ctx, base, params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"additional_options.name", "additional_options.category_name"},
	})
	if err != nil {
		return pagination.Page[models.AdditionalOption]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing options")
	}
	return page, nil
}

// ListForModel feeds the configurator steps: add-ons of one kind for
// one model, ordered for stable display.
func (r *repository) ListForModel(ctx context.Context, modelID uuid.UUID, optionType enums.OptionType) ([]models.AdditionalOption, error) {
	var rows []models.AdditionalOption
	err := r.conn.WithContext(ctx).
		Where("vehicle_model_id = ? AND type = ?", modelID, optionType).
		Order("category_name ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing options for model")
	}
	return rows, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.AdditionalOption, error) {
	var option models.AdditionalOption
	err := r.conn.WithContext(ctx).Preload("VehicleModel").First(&option, "additional_options.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "option not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching option")
	}
	return &option, nil
}

func (r *repository) GetMany(ctx context.Context, ids []uuid.UUID) ([]models.AdditionalOption, error) {
	if len(ids) == 0 {
		return []models.AdditionalOption{}, nil
	}
	var rows []models.AdditionalOption
	err := r.conn.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching options")
	}
	return rows, nil
}

func (r *repository) Create(ctx context.Context, option *models.AdditionalOption) error {
	if err := r.conn.WithContext(ctx).Create(option).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "vehicle model or option category does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating option")
	}
	return nil
}

func (r *repository) Update(ctx context.Context, option *models.AdditionalOption) error {
	result := r.conn.WithContext(ctx).
		Model(&models.AdditionalOption{}).
		Where("id = ?", option.ID).
		Updates(map[string]any{
			"name":               option.Name,
			"price":              option.Price,
			"vehicle_model_id":   option.VehicleModelID,
			"option_category_id": option.OptionCategoryID,
			"category_name":      option.CategoryName,
			"type":               option.Type,
		})
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, result.Error, "vehicle model or option category does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating option")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "option not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.AdditionalOption{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "option is still referenced by orders")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting option")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "option not found")
	}
	return nil
}

// SyncCategoryName refreshes the denormalized category_name column on
// every option under the renamed category.
func (r *repository) SyncCategoryName(ctx context.Context, categoryID uuid.UUID, name string) error {
	err := r.conn.WithContext(ctx).
		Model(&models.AdditionalOption{}).
		Where("option_category_id = ?", categoryID).
		Update("category_name", name).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "syncing option category name")
	}
	return nil
}
