package vehiclemodels

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// Service manages the caravan model catalog.
type Service interface {
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.VehicleModel], error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.VehicleModel, error)
	ListAll(ctx context.Context) ([]models.VehicleModel, error)
	Get(ctx context.Context, id uuid.UUID) (*models.VehicleModel, error)
	Create(ctx context.Context, in ModelInput) (*models.VehicleModel, error)
	Update(ctx context.Context, id uuid.UUID, in ModelInput) (*models.VehicleModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("vehiclemodels: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.VehicleModel], error) {
	return s.repo.List(ctx, params, search)
}

func (s *service) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.VehicleModel, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *service) ListAll(ctx context.Context) ([]models.VehicleModel, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.VehicleModel, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, in ModelInput) (*models.VehicleModel, error) {
	model, err := modelFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "vehicle_model_id", model.ID), "vehiclemodels.created")
	}
	return s.repo.Get(ctx, model.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in ModelInput) (*models.VehicleModel, error) {
	model, err := modelFromInput(in)
	if err != nil {
		return nil, err
	}
	model.ID = id
	if err := s.repo.Update(ctx, model); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error) {
	result := &types.BulkDeleteResult{Deleted: []string{}, Failed: []types.BulkDeleteFailed{}}
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			result.Failed = append(result.Failed, types.BulkDeleteFailed{ID: id.String(), Error: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, id.String())
	}
	return result, nil
}

func modelFromInput(in ModelInput) (*models.VehicleModel, error) {
	categoryID, err := uuid.Parse(in.CategoryID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category_id must be a valid uuid")
	}

	basePrice, err := parsePrice(in.BasePrice, "base_price")
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(in.Price, "price")
	if err != nil {
		return nil, err
	}

	return &models.VehicleModel{
		Name:          strings.TrimSpace(in.Name),
		SleepPerson:   in.SleepPerson,
		Description:   in.Description,
		InnerImage:    in.InnerImage,
		OuterImage:    in.OuterImage,
		GalleryImages: in.GalleryImages,
		CategoryID:    categoryID,
		BasePrice:     basePrice,
		Price:         price,
	}, nil
}

func parsePrice(raw, field string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, field+" must be a valid amount")
	}
	if value.IsNegative() {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, field+" cannot be negative")
	}
	return value, nil
}
