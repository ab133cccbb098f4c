package modelimages

import (
	"context"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// Service manages the rendered preview images shown in the configurator.
type Service interface {
	ListColorImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelColorImage], error)
	GetColorImage(ctx context.Context, id uuid.UUID) (*models.ModelColorImage, error)
	FindColorImage(ctx context.Context, modelID, baseColorID, decalColorID uuid.UUID) (*models.ModelColorImage, error)
	CreateColorImage(ctx context.Context, in ColorImageInput) (*models.ModelColorImage, error)
	UpdateColorImage(ctx context.Context, id uuid.UUID, in ColorImageInput) (*models.ModelColorImage, error)
	DeleteColorImage(ctx context.Context, id uuid.UUID) error
	BulkDeleteColorImages(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)

	ListThemeImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelThemeImage], error)
	GetThemeImage(ctx context.Context, id uuid.UUID) (*models.ModelThemeImage, error)
	FindThemeImage(ctx context.Context, modelID, themeID uuid.UUID) (*models.ModelThemeImage, error)
	CreateThemeImage(ctx context.Context, in ThemeImageInput) (*models.ModelThemeImage, error)
	UpdateThemeImage(ctx context.Context, id uuid.UUID, in ThemeImageInput) (*models.ModelThemeImage, error)
	DeleteThemeImage(ctx context.Context, id uuid.UUID) error
	BulkDeleteThemeImages(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("modelimages: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) ListColorImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelColorImage], error) {
	return s.repo.ListColorImages(ctx, params)
}

func (s *service) GetColorImage(ctx context.Context, id uuid.UUID) (*models.ModelColorImage, error) {
	return s.repo.GetColorImage(ctx, id)
}

func (s *service) FindColorImage(ctx context.Context, modelID, baseColorID, decalColorID uuid.UUID) (*models.ModelColorImage, error) {
	return s.repo.FindColorImage(ctx, modelID, baseColorID, decalColorID)
}

func (s *service) CreateColorImage(ctx context.Context, in ColorImageInput) (*models.ModelColorImage, error) {
	image, err := colorImageFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateColorImage(ctx, image); err != nil {
		return nil, err
	}
	return s.repo.GetColorImage(ctx, image.ID)
}

func (s *service) UpdateColorImage(ctx context.Context, id uuid.UUID, in ColorImageInput) (*models.ModelColorImage, error) {
	image, err := colorImageFromInput(in)
	if err != nil {
		return nil, err
	}
	image.ID = id
	if err := s.repo.UpdateColorImage(ctx, image); err != nil {
		return nil, err
	}
	return s.repo.GetColorImage(ctx, id)
}

func (s *service) DeleteColorImage(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteColorImage(ctx, id)
}

func (s *service) BulkDeleteColorImages(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error) {
	result := &types.BulkDeleteResult{Deleted: []string{}, Failed: []types.BulkDeleteFailed{}}
	for _, id := range ids {
		if err := s.repo.DeleteColorImage(ctx, id); err != nil {
			result.Failed = append(result.Failed, types.BulkDeleteFailed{ID: id.String(), Error: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, id.String())
	}
	return result, nil
}

func (s *service) ListThemeImages(ctx context.Context, params pagination.Params) (pagination.Page[models.ModelThemeImage], error) {
	return s.repo.ListThemeImages(ctx, params)
}

func (s *service) GetThemeImage(ctx context.Context, id uuid.UUID) (*models.ModelThemeImage, error) {
	return s.repo.GetThemeImage(ctx, id)
}

func (s *service) FindThemeImage(ctx context.Context, modelID, themeID uuid.UUID) (*models.ModelThemeImage, error) {
	return s.repo.FindThemeImage(ctx, modelID, themeID)
}

func (s *service) CreateThemeImage(ctx context.Context, in ThemeImageInput) (*models.ModelThemeImage, error) {
	image, err := themeImageFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateThemeImage(ctx, image); err != nil {
		return nil, err
	}
	return s.repo.GetThemeImage(ctx, image.ID)
}

func (s *service) UpdateThemeImage(ctx context.Context, id uuid.UUID, in ThemeImageInput) (*models.ModelThemeImage, error) {
	image, err := themeImageFromInput(in)
	if err != nil {
		return nil, err
	}
	image.ID = id
	if err := s.repo.UpdateThemeImage(ctx, image); err != nil {
		return nil, err
	}
	return s.repo.GetThemeImage(ctx, id)
}

func (s *service) DeleteThemeImage(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteThemeImage(ctx, id)
}

func (s *service) BulkDeleteThemeImages(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error) {
	result := &types.BulkDeleteResult{Deleted: []string{}, Failed: []types.BulkDeleteFailed{}}
	for _, id := range ids {
		if err := s.repo.DeleteThemeImage(ctx, id); err != nil {
			result.Failed = append(result.Failed, types.BulkDeleteFailed{ID: id.String(), Error: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, id.String())
	}
	return result, nil
}

func colorImageFromInput(in ColorImageInput) (*models.ModelColorImage, error) {
	modelID, err := uuid.Parse(in.VehicleModelID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle_model_id must be a valid uuid")
	}
	baseID, err := uuid.Parse(in.BaseColorID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_color_id must be a valid uuid")
	}
	decalID, err := uuid.Parse(in.DecalColorID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "decal_color_id must be a valid uuid")
	}
	return &models.ModelColorImage{
		VehicleModelID: modelID,
		BaseColorID:    baseID,
		DecalColorID:   decalID,
		Image:          in.Image,
	}, nil
}

func themeImageFromInput(in ThemeImageInput) (*models.ModelThemeImage, error) {
	modelID, err := uuid.Parse(in.VehicleModelID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle_model_id must be a valid uuid")
	}
	themeID, err := uuid.Parse(in.ThemeID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "theme_id must be a valid uuid")
	}
	return &models.ModelThemeImage{
		VehicleModelID: modelID,
		ThemeID:        themeID,
		Image:          in.Image,
	}, nil
}
