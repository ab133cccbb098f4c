package categories

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// Service manages the model category catalog.
type Service interface {
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Category], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("categories: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Category], error) {
	return s.repo.List(ctx, params, search)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{Name: strings.TrimSpace(in.Name)}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "category_id", category.ID), "categories.created")
	}
	return category, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*models.Category, error) {
	category := &models.Category{ID: id, Name: strings.TrimSpace(in.Name)}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// BulkDelete removes each id independently so one missing or still
// referenced row does not abort the rest of the batch.
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
