package themes

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
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Theme], error)
	ListAll(ctx context.Context) ([]models.Theme, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Theme, error)
	Create(ctx context.Context, theme *models.Theme) error
	Update(ctx context.Context, theme *models.Theme) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("themes: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Theme], error) {
	page, err := db.ListPage[models.Theme](ctx, r.conn.Model(&models.Theme{}), params, db.ListOptions{
		Search:        search,
		SearchColumns: []string{"name", "flooring_name", "cabinetry_name", "table_top_name", "seating_name"},
	})
	if err != nil {
		return pagination.Page[models.Theme]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing themes")
	}
	return page, nil
}

// ListAll feeds the configurator's theme step, oldest first.
func (r *repository) ListAll(ctx context.Context) ([]models.Theme, error) {
	var rows []models.Theme
	if err := r.conn.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing themes")
	}
	return rows, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.Theme, error) {
	var theme models.Theme
	err := r.conn.WithContext(ctx).First(&theme, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "theme not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching theme")
	}
	return &theme, nil
}

func (r *repository) Create(ctx context.Context, theme *models.Theme) error {
	if err := r.conn.WithContext(ctx).Create(theme).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating theme")
	}
	return nil
}

func (r *repository) Update(ctx context.Context, theme *models.Theme) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Theme{}).
		Where("id = ?", theme.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(theme)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating theme")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "theme not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).Delete(&models.Theme{}, "id = ?", id)
	if result.Error != nil {
		if db.IsForeignKeyViolation(result.Error) {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, result.Error, "theme is still referenced")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting theme")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "theme not found")
	}
	return nil
}
