package vehiclemodels

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
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.VehicleModel], error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.VehicleModel, error)
	ListAll(ctx context.Context) ([]models.VehicleModel, error)
	Get(ctx context.Context, id uuid.UUID) (*models.VehicleModel, error)
	Create(ctx context.Context, model *models.VehicleModel) error
	Update(ctx context.Context, model *models.VehicleModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("vehiclemodels: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.VehicleModel], error) {
	base := r.conn.Model(&models.VehicleModel{}).Preload("Category")
	page, err := db.ListPage[models.VehicleModel](ctx, base, params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"vehicle_models.name"},
	})
	if err != nil {
		return pagination.Page[models.VehicleModel]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing vehicle models")
	}
	return page, nil
}

func (r *repository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.VehicleModel, error) {
	var rows []models.VehicleModel
	err := r.conn.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Preload("Category").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing vehicle models by category")
	}
	return rows, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.VehicleModel, error) {
	var rows []models.VehicleModel
	err := r.conn.WithContext(ctx).
		Order("created_at ASC").
		Preload("Category").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing vehicle models")
	}
	return rows, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.VehicleModel, error) {
	var model models.VehicleModel
	err := r.conn.WithContext(ctx).Preload("Category").First(&model, "vehicle_models.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle model not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching vehicle model")
	}
	return &model, nil
}

func (r *repository) Create(ctx context.Context, model *models.VehicleModel) error {
	if err := r.conn.WithContext(ctx).Create(model).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "category does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating vehicle model")
	}
	return nil
}

func (r *repository) Update(ctx context.Context, model *models.VehicleModel) error {
	updates := map[string]any{
		"name":         model.Name,
		"sleep_person": model.SleepPerson,
		"description":  model.Description,
		"category_id":  model.CategoryID,
		"base_price":   model.BasePrice,
		"price":        model.Price,
	}
	if model.InnerImage != nil {
		updates["inner_image"] = *model.InnerImage
	}
	if model.OuterImage != nil {
		updates["outer_image"] = *model.OuterImage
	}
	if model.GalleryImages != nil {
		updates["gallery_images"] = model.GalleryImages
	}

	result := r.conn.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ?", model.ID).
		Updates(updates)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, result.Error, "category does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating vehicle model")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle model not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.VehicleModel{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "vehicle model is still referenced by orders or options")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting vehicle model")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle model not found")
	}
	return nil
}
