package options

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// Service manages add-on options and their groupings.
type Service interface {
	ListCategories(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.OptionCategory], error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.OptionCategory, error)
	CreateCategory(ctx context.Context, in CreateOptionCategoryInput) (*models.OptionCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateOptionCategoryInput) (*models.OptionCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	BulkDeleteCategories(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)

	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.AdditionalOption], error)
	ListForModel(ctx context.Context, modelID uuid.UUID, optionType enums.OptionType) ([]models.AdditionalOption, error)
	Get(ctx context.Context, id uuid.UUID) (*models.AdditionalOption, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]models.AdditionalOption, error)
	Create(ctx context.Context, in OptionInput) (*models.AdditionalOption, error)
	Update(ctx context.Context, id uuid.UUID, in OptionInput) (*models.AdditionalOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("options: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) ListCategories(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.OptionCategory], error) {
	return s.repo.ListCategories(ctx, params, search)
}

func (s *service) GetCategory(ctx context.Context, id uuid.UUID) (*models.OptionCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, in CreateOptionCategoryInput) (*models.OptionCategory, error) {
	optionType, err := enums.ParseOptionType(in.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type must be manufacturer or vanari")
	}
	category := &models.OptionCategory{Name: strings.TrimSpace(in.Name), Type: optionType}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames the group and pushes the new name into the
// denormalized copy each option row carries.
func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateOptionCategoryInput) (*models.OptionCategory, error) {
	optionType, err := enums.ParseOptionType(in.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type must be manufacturer or vanari")
	}
	category := &models.OptionCategory{ID: id, Name: strings.TrimSpace(in.Name), Type: optionType}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	if err := s.repo.SyncCategoryName(ctx, id, category.Name); err != nil {
		return nil, err
	}
	return s.repo.GetCategory(ctx, id)
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) BulkDeleteCategories(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error) {
	result := &types.BulkDeleteResult{Deleted: []string{}, Failed: []types.BulkDeleteFailed{}}
	for _, id := range ids {
		if err := s.repo.DeleteCategory(ctx, id); err != nil {
			result.Failed = append(result.Failed, types.BulkDeleteFailed{ID: id.String(), Error: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, id.String())
	}
	return result, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.AdditionalOption], error) {
	return s.repo.List(ctx, params, search)
}

func (s *service) ListForModel(ctx context.Context, modelID uuid.UUID, optionType enums.OptionType) ([]models.AdditionalOption, error) {
	return s.repo.ListForModel(ctx, modelID, optionType)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.AdditionalOption, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) GetMany(ctx context.Context, ids []uuid.UUID) ([]models.AdditionalOption, error) {
	return s.repo.GetMany(ctx, ids)
}

func (s *service) Create(ctx context.Context, in OptionInput) (*models.AdditionalOption, error) {
	option, err := s.optionFromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, option); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "option_id", option.ID), "options.created")
	}
	return s.repo.Get(ctx, option.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in OptionInput) (*models.AdditionalOption, error) {
	option, err := s.optionFromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	option.ID = id
	if err := s.repo.Update(ctx, option); err != nil {
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

func (s *service) optionFromInput(ctx context.Context, in OptionInput) (*models.AdditionalOption, error) {
	optionType, err := enums.ParseOptionType(in.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type must be manufacturer or vanari")
	}

	modelID, err := uuid.Parse(in.VehicleModelID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle_model_id must be a valid uuid")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be a valid amount")
	}
	if price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	option := &models.AdditionalOption{
		Name:           strings.TrimSpace(in.Name),
		Price:          price,
		VehicleModelID: modelID,
		Type:           optionType,
	}

	if in.OptionCategoryID != nil && *in.OptionCategoryID != "" {
		categoryID, err := uuid.Parse(*in.OptionCategoryID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "option_category_id must be a valid uuid")
		}
		category, err := s.repo.GetCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		option.OptionCategoryID = &category.ID
		option.CategoryName = category.Name
	}

	return option, nil
}
