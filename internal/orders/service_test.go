package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbmodels "github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/db/testdb"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

type fixture struct {
	svc      Service
	conn     *gorm.DB
	modelID  uuid.UUID
	themeID  uuid.UUID
	baseID   uuid.UUID
	decalID  uuid.UUID
	optionID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testdb.Open(t)

	category := dbmodels.Category{Name: "Touring"}
	require.NoError(t, conn.Create(&category).Error)
	model := dbmodels.VehicleModel{
		Name:        "Grand Tourer 620",
		SleepPerson: 4,
		CategoryID:  category.ID,
		BasePrice:   decimal.NewFromInt(79500),
		Price:       decimal.NewFromInt(79500),
	}
	require.NoError(t, conn.Create(&model).Error)

	theme := dbmodels.Theme{
		Name:          "Coastal",
		FlooringName:  "Oak Plank",
		CabinetryName: "White Gloss",
		TableTopName:  "Stone Grey",
		SeatingName:   "Navy Weave",
	}
	require.NoError(t, conn.Create(&theme).Error)

	colorType := dbmodels.ColorType{Name: "External Base Colours"}
	require.NoError(t, conn.Create(&colorType).Error)
	base := dbmodels.Color{Name: "Arctic White", Code: "#FFF", Status: "active", ColorTypeID: colorType.ID}
	require.NoError(t, conn.Create(&base).Error)
	decal := dbmodels.Color{Name: "Sunset Orange", Code: "#F60", Status: "active", ColorTypeID: colorType.ID}
	require.NoError(t, conn.Create(&decal).Error)

	option := dbmodels.AdditionalOption{
		Name:           "Weight Distribution Hitch",
		Price:          decimal.NewFromInt(660),
		VehicleModelID: model.ID,
		Type:           enums.OptionTypeManufacturer,
	}
	require.NoError(t, conn.Create(&option).Error)

	return &fixture{
		svc:      NewService(NewRepository(conn), nil),
		conn:     conn,
		modelID:  model.ID,
		themeID:  theme.ID,
		baseID:   base.ID,
		decalID:  decal.ID,
		optionID: option.ID,
	}
}

func (f *fixture) createOrder(t *testing.T) *dbmodels.Order {
	t.Helper()
	themeID := f.themeID
	order, err := f.svc.Create(context.Background(), CreateOrderInput{
		VehicleModelID: f.modelID,
		ThemeID:        &themeID,
		BasePrice:      decimal.NewFromInt(79500),
		TotalPrice:     decimal.NewFromInt(80160),
		Customer: CustomerInput{
			FirstName: "Alex",
			LastName:  "Nguyen",
			Email:     "Alex@Example.Com",
			Phone:     "0400000000",
		},
		Colors: []ColorSelection{
			{ColorID: f.baseID, Role: "base"},
			{ColorID: f.decalID, Role: "decal"},
		},
		Options: []OptionSnapshot{
			{OptionID: f.optionID, Name: "Weight Distribution Hitch", Price: decimal.NewFromInt(660), Type: enums.OptionTypeManufacturer},
		},
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrderDetail(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)

	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(80160)))
	require.NotNil(t, order.CustomerInfo)
	assert.Equal(t, "alex@example.com", order.CustomerInfo.Email)
	require.NotNil(t, order.VehicleModel)
	require.NotNil(t, order.VehicleModel.Category)
	require.NotNil(t, order.Theme)
	require.Len(t, order.Colors, 2)
	require.NotNil(t, order.Colors[0].Color)
	require.Len(t, order.Options, 1)
	assert.Equal(t, "Weight Distribution Hitch", order.Options[0].Name)
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()

	// Skipping a step is rejected.
	_, err := f.svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "confirmed"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	updated, err := f.svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusContacted, updated.Status)

	updated, err = f.svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, updated.Status)

	// Cancellation is allowed from any active status.
	updated, err = f.svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, updated.Status)

	// Terminal states accept nothing further.
	_, err = f.svc.UpdateStatus(ctx, order.ID, UpdateStatusInput{Status: "pending"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)

	_, err := f.svc.UpdateStatus(context.Background(), order.ID, UpdateStatusInput{Status: "shipped"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListSearchesCustomer(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t)

	page, err := f.svc.List(context.Background(), pagination.Params{}, "nguyen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].CustomerInfo)

	empty, err := f.svc.List(context.Background(), pagination.Params{}, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Total)
	assert.Empty(t, empty.Data)
}

func TestDeleteRemovesSelections(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, order.ID))

	_, err := f.svc.Get(ctx, order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	var colorCount int64
	require.NoError(t, f.conn.Model(&dbmodels.OrderColor{}).Where("order_id = ?", order.ID).Count(&colorCount).Error)
	assert.Equal(t, int64(0), colorCount)
}

func TestBulkDelete(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)
	missing := uuid.New()

	result, err := f.svc.BulkDelete(context.Background(), []uuid.UUID{order.ID, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{order.ID.String()}, result.Deleted)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, missing.String(), result.Failed[0].ID)
}
