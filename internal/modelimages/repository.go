package modelimages

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
	ListColorImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelColorImage], error)
	GetColorImage(ctx context.Context, id uuid.UUID) (*models.ModelColorImage, error)
	FindColorImage(ctx context.Context, modelID, baseColorID, decalColorID uuid.UUID) (*models.ModelColorImage, error)
	CreateColorImage(ctx context.Context, image *models.ModelColorImage) error
	UpdateColorImage(ctx context.Context, image *models.ModelColorImage) error
	DeleteColorImage(ctx context.Context, id uuid.UUID) error

	ListThemeImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelThemeImage], error)
	GetThemeImage(ctx context.Context, id uuid.UUID) (*models.ModelThemeImage, error)
	FindThemeImage(ctx context.Context, modelID, themeID uuid.UUID) (*models.ModelThemeImage, error)
	CreateThemeImage(ctx context.Context, image *models.ModelThemeImage) error
	UpdateThemeImage(ctx context.Context, image *models.ModelThemeImage) error
	DeleteThemeImage(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("modelimages: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) ListColorImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelColorImage], error) {
	base := r.conn.Model(&models.ModelColorImage{}).
		Preload("VehicleModel").
		Preload("BaseColor").
		Preload("DecalColor")
	page, err := db.ListPage[models.ModelColorImage](ctx, base, params, db.ListOptions{})
	if err != nil {
		return pagination.Page[models.ModelColorImage]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing color images")
	}
	return page, nil
}

func (r *repository) GetColorImage(ctx context.Context, id uuid.UUID) (*models.ModelColorImage, error) {
	var image models.ModelColorImage
	err := r.conn.WithContext(ctx).
		Preload("VehicleModel").
		Preload("BaseColor").
		Preload("DecalColor").
		First(&image, "model_color_images.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "color image not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching color image")
	}
	return &image, nil
}

// FindColorImage resolves the rendering for a model and color pair. The
// configurator treats a miss as "no preview available", not an error.
func (r *repository) FindColorImage(ctx context.Context, modelID, baseColorID, decalColorID uuid.UUID) (*models.ModelColorImage, error) {
	var image models.ModelColorImage
	err := r.conn.WithContext(ctx).
		Where("vehicle_model_id = ? AND base_color_id = ? AND decal_color_id = ?", modelID, baseColorID, decalColorID).
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding color image")
	}
	return &image, nil
}

func (r *repository) CreateColorImage(ctx context.Context, image *models.ModelColorImage) error {
	if err := r.conn.WithContext(ctx).Create(image).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "an image already exists for this model and color pair")
		}
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "model or color does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating color image")
	}
	return nil
}

func (r *repository) UpdateColorImage(ctx context.Context, image *models.ModelColorImage) error {
	result := r.conn.WithContext(ctx).
		Model(&models.ModelColorImage{}).
		Where("id = ?", image.ID).
		Updates(map[string]any{
			"vehicle_model_id": image.VehicleModelID,
			"base_color_id":    image.BaseColorID,
			"decal_color_id":   image.DecalColorID,
			"image":            image.Image,
		})
	if result.Error != nil {
		if db.IsUniqueViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "an image already exists for this model and color pair")
		}
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, result.Error, "model or color does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating color image")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "color image not found")
	}
	return nil
}

func (r *repository) DeleteColorImage(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.ModelColorImage{}, "id = ?", id)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting color image")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "color image not found")
	}
	return nil
}

func (r *repository) ListThemeImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelThemeImage], error) {
	base := r.conn.Model(&models.ModelThemeImage{}).
		Preload("VehicleModel").
		Preload("Theme")
	page, err := db.ListPage[models.ModelThemeImage](ctx, base, params, db.ListOptions{})
	if err != nil {
		return pagination.Page[models.ModelThemeImage]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing theme images")
	}
	return page, nil
}

func (r *repository) GetThemeImage(ctx context.Context, id uuid.UUID) (*models.ModelThemeImage, error) {
	var image models.ModelThemeImage
	err := r.conn.WithContext(ctx).
		Preload("VehicleModel").
		Preload("Theme").
		First(&image, "model_theme_images.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "theme image not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching theme image")
	}
	return &image, nil
}

func (r *repository) FindThemeImage(ctx context.Context, modelID, themeID uuid.UUID) (*models.ModelThemeImage, error) {
	var image models.ModelThemeImage
	err := r.conn.WithContext(ctx).
		Where("vehicle_model_id = ? AND theme_id = ?", modelID, themeID).
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding theme image")
	}
	return &image, nil
}

func (r *repository) CreateThemeImage(ctx context.Context, image *models.ModelThemeImage) error {
	if err := r.conn.WithContext(ctx).Create(image).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "an image already exists for this model and theme")
		}
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "model or theme does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating theme image")
	}
	return nil
}

func (r *repository) UpdateThemeImage(ctx context.Context, image *models.ModelThemeImage) error {
	result := r.conn.WithContext(ctx).
		Model(&models.ModelThemeImage{}).
		Where("id = ?", image.ID).
		Updates(map[string]any{
			"vehicle_model_id": image.VehicleModelID,
			"theme_id":         image.ThemeID,
			"image":            image.Image,
		})
	if result.Error != nil {
		if db.IsUniqueViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "an image already exists for this model and theme")
		}
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, result.Error, "model or theme does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating theme image")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "theme image not found")
	}
	return nil
}

func (r *repository) DeleteThemeImage(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.ModelThemeImage{}, "id = ?", id)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting theme image")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "theme image not found")
	}
	return nil
}
