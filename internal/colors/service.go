package colors

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// Service manages exterior color swatches and their groupings.
type Service interface {
	ListTypes(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.ColorType], error)
	GetType(ctx context.Context, id uuid.UUID) (*models.ColorType, error)
	CreateType(ctx context.Context, in CreateColorTypeInput) (*models.ColorType, error)
	UpdateType(ctx context.Context, id uuid.UUID, in UpdateColorTypeInput) (*models.ColorType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error
	BulkDeleteTypes(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)

	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Color], error)
	ListActiveByType(ctx context.Context, typeName string) ([]models.Color, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Color, error)
	Create(ctx context.Context, in CreateColorInput) (*models.Color, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateColorInput) (*models.Color, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("colors: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) ListTypes(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.ColorType], error) {
	return s.repo.ListTypes(ctx, params, search)
}

func (s *service) GetType(ctx context.Context, id uuid.UUID) (*models.ColorType, error) {
	return s.repo.GetType(ctx, id)
}

func (s *service) CreateType(ctx context.Context, in CreateColorTypeInput) (*models.ColorType, error) {
	colorType := &models.ColorType{Name: strings.TrimSpace(in.Name)}
	if err := s.repo.CreateType(ctx, colorType); err != nil {
		return nil, err
	}
	return colorType, nil
}

func (s *service) UpdateType(ctx context.Context, id uuid.UUID, in UpdateColorTypeInput) (*models.ColorType, error) {
	colorType := &models.ColorType{ID: id, Name: strings.TrimSpace(in.Name)}
	if err := s.repo.UpdateType(ctx, colorType); err != nil {
		return nil, err
	}
	return s.repo.GetType(ctx, id)
}

func (s *service) DeleteType(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteType(ctx, id)
}

func (s *service) BulkDeleteTypes(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error) {
	result := &types.BulkDeleteResult{Deleted: []string{}, Failed: []types.BulkDeleteFailed{}}
	for _, id := range ids {
		if err := s.repo.DeleteType(ctx, id); err != nil {
			result.Failed = append(result.Failed, types.BulkDeleteFailed{ID: id.String(), Error: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, id.String())
	}
	return result, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Color], error) {
	return s.repo.List(ctx, params, search)
}

func (s *service) ListActiveByType(ctx context.Context, typeName string) ([]models.Color, error) {
	return s.repo.ListActiveByType(ctx, typeName)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Color, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, in CreateColorInput) (*models.Color, error) {
	color, err := colorFromInput(in.Name, in.Code, in.Image, in.Status, in.ColorTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, color); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "color_id", color.ID), "colors.created")
	}
	return s.repo.Get(ctx, color.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateColorInput) (*models.Color, error) {
	color, err := colorFromInput(in.Name, in.Code, in.Image, in.Status, in.ColorTypeID)
	if err != nil {
		return nil, err
	}
	color.ID = id
	if err := s.repo.Update(ctx, color); err != nil {
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

func colorFromInput(name, code string, image *string, status, colorTypeID string) (*models.Color, error) {
	typeID, err := uuid.Parse(colorTypeID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "color_type_id must be a valid uuid")
	}

	recordStatus := enums.RecordStatusActive
	if status != "" {
		parsed, err := enums.ParseRecordStatus(status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be active or inactive")
		}
		recordStatus = parsed
	}

	return &models.Color{
		Name:        strings.TrimSpace(name),
		Code:        strings.TrimSpace(code),
		Image:       image,
		Status:      recordStatus,
		ColorTypeID: typeID,
	}, nil
}
