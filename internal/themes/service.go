package themes

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// Service manages interior theme bundles.
type Service interface {
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Theme], error)
	ListAll(ctx context.Context) ([]models.Theme, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Theme, error)
	Create(ctx context.Context, in ThemeInput) (*models.Theme, error)
	Update(ctx context.Context, id uuid.UUID, in ThemeInput) (*models.Theme, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("themes: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Theme], error) {
	return s.repo.List(ctx, params, search)
}

func (s *service) ListAll(ctx context.Context) ([]models.Theme, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Theme, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, in ThemeInput) (*models.Theme, error) {
	theme := themeFromInput(in)
	if err := s.repo.Create(ctx, theme); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "theme_id", theme.ID), "themes.created")
	}
	return theme, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in ThemeInput) (*models.Theme, error) {
	theme := themeFromInput(in)
	theme.ID = id
	if err := s.repo.Update(ctx, theme); err != nil {
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

func themeFromInput(in ThemeInput) *models.Theme {
	return &models.Theme{
		Name:  strings.TrimSpace(in.Name),
		Image: in.Image,

		FlooringName:         strings.TrimSpace(in.FlooringName),
		FlooringImage:        in.FlooringImage,
		FlooringVariantName:  in.FlooringVariantName,
		FlooringVariantImage: in.FlooringVariantImage,

		CabinetryName:  strings.TrimSpace(in.CabinetryName),
		CabinetryImage: in.CabinetryImage,

		TableTopName:  strings.TrimSpace(in.TableTopName),
		TableTopImage: in.TableTopImage,

		SeatingName:         strings.TrimSpace(in.SeatingName),
		SeatingImage:        in.SeatingImage,
		SeatingVariantName:  in.SeatingVariantName,
		SeatingVariantImage: in.SeatingVariantImage,
	}
}
