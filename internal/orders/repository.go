package orders

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
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Order], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order, customer *models.CustomerInfo) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	conn *gorm.DB
}

func NewRepository(conn *gorm.DB) Repository {
	if conn == nil {
		panic("orders: db connection is required")
	}
	return &repository{conn: conn}
}

func (r *repository) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Order], error) {
	base := r.conn.Model(&models.Order{}).
		Joins("JOIN customer_infos ON customer_infos.id = orders.customer_info_id").
		Preload("VehicleModel").
		Preload("CustomerInfo")
	page, err := db.ListPage[models.Order](ctx, base, params, db.ListOptions{
		Search: search,
		SearchColumns: []string{
			"customer_infos.first_name",
			"customer_infos.last_name",
			"customer_infos.email",
			"customer_infos.phone",
		},
		Order: "orders.created_at DESC",
	})
	if err != nil {
		return pagination.Page[models.Order]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return page, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.conn.WithContext(ctx).
		Preload("VehicleModel").
		Preload("VehicleModel.Category").
		Preload("Theme").
		Preload("CustomerInfo").
		Preload("Colors").
		Preload("Colors.Color").
		Preload("Colors.Color.ColorType").
		Preload("Options").
		First(&order, "orders.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching order")
	}
	return &order, nil
}

// Create writes the customer block, the order, and its selections in a
// single transaction.
func (r *repository) Create(ctx context.Context, order *models.Order, customer *models.CustomerInfo) error {
	err := r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		order.CustomerInfoID = customer.ID
		return tx.Create(order).Error
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "order references a missing record")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "updating order status")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderColor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderOption{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting order")
	}
	return nil
}
