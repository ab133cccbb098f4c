package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// statusTransitions lists the forward moves an order may take. Any
// non-terminal status can also be cancelled.
var statusTransitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPending:      {enums.OrderStatusContacted, enums.OrderStatusCancelled},
	enums.OrderStatusContacted:    {enums.OrderStatusConfirmed, enums.OrderStatusCancelled},
	enums.OrderStatusConfirmed:    {enums.OrderStatusInProduction, enums.OrderStatusCancelled},
	enums.OrderStatusInProduction: {enums.OrderStatusCompleted, enums.OrderStatusCancelled},
	enums.OrderStatusCompleted:    {},
	enums.OrderStatusCancelled:    {},
}

// Service manages submitted quote requests.
type Service interface {
	List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Order], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, in UpdateStatusInput) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*types.BulkDeleteResult, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	if repo == nil {
		panic("orders: repository is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context, params pagination.Params, search string) (pagination.Page[models.Order], error) {
	return s.repo.List(ctx, params, search)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.VehicleModelID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle model is required")
	}

	customer := &models.CustomerInfo{
		FirstName: strings.TrimSpace(in.Customer.FirstName),
		LastName:  strings.TrimSpace(in.Customer.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Customer.Email)),
		Phone:     strings.TrimSpace(in.Customer.Phone),
		Postcode:  in.Customer.Postcode,
		Message:   in.Customer.Message,
	}

	order := &models.Order{
		VehicleModelID: in.VehicleModelID,
		ThemeID:        in.ThemeID,
		BasePrice:      in.BasePrice,
		TotalPrice:     in.TotalPrice,
		Status:         enums.OrderStatusPending,
	}
	for _, selection := range in.Colors {
		order.Colors = append(order.Colors, models.OrderColor{
			ColorID: selection.ColorID,
			Role:    selection.Role,
		})
	}
	for _, snapshot := range in.Options {
		order.Options = append(order.Options, models.OrderOption{
			AdditionalOptionID: snapshot.OptionID,
			Name:               snapshot.Name,
			Price:              snapshot.Price,
			Type:               snapshot.Type,
		})
	}

	if err := s.repo.Create(ctx, order, customer); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "order_id", order.ID), "orders.created")
	}
	return s.repo.Get(ctx, order.ID)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, in UpdateStatusInput) (*models.Order, error) {
	next, err := enums.ParseOrderStatus(in.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(order.Status, next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	if s.log != nil {
		ctx = s.log.WithFields(ctx, map[string]any{
			"order_id": id,
			"from":     order.Status,
			"to":       next,
		})
		s.log.Info(ctx, "orders.status_changed")
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

func transitionAllowed(from, to enums.OrderStatus) bool {
	for _, candidate := range statusTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
