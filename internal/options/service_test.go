package options

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

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := testdb.Open(t)
	return NewService(NewRepository(conn), nil), conn
}

func seedModel(t *testing.T, conn *gorm.DB, name string) uuid.UUID {
	t.Helper()
	category := dbmodels.Category{Name: "Touring " + name}
	require.NoError(t, conn.Create(&category).Error)
	model := dbmodels.VehicleModel{
		Name:        name,
		SleepPerson: 4,
		CategoryID:  category.ID,
		BasePrice:   decimal.NewFromInt(79500),
		Price:       decimal.NewFromInt(79500),
	}
	require.NoError(t, conn.Create(&model).Error)
	return model.ID
}

func TestOptionCategoryRenameSyncsOptions(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	modelID := seedModel(t, conn, "Grand Tourer 620")

	category, err := svc.CreateCategory(ctx, CreateOptionCategoryInput{Name: "Towing", Type: "manufacturer"})
	require.NoError(t, err)

	categoryID := category.ID.String()
	option, err := svc.Create(ctx, OptionInput{
		Name:             "Weight Distribution Hitch",
		Price:            "660",
		VehicleModelID:   modelID.String(),
		OptionCategoryID: &categoryID,
		Type:             "manufacturer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Towing", option.CategoryName)

	_, err = svc.UpdateCategory(ctx, category.ID, UpdateOptionCategoryInput{Name: "Towing & Safety", Type: "manufacturer"})
	require.NoError(t, err)

	refreshed, err := svc.Get(ctx, option.ID)
	require.NoError(t, err)
	assert.Equal(t, "Towing & Safety", refreshed.CategoryName)
}

func TestCreateOptionWithoutCategory(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	modelID := seedModel(t, conn, "Grand Tourer 620")

	option, err := svc.Create(ctx, OptionInput{
		Name:           "Solar Panel 200W",
		Price:          "1250.50",
		VehicleModelID: modelID.String(),
		Type:           "vanari",
	})
	require.NoError(t, err)
	assert.Nil(t, option.OptionCategoryID)
	assert.Empty(t, option.CategoryName)
	assert.True(t, option.Price.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, enums.OptionTypeVanari, option.Type)
}

func TestCreateOptionMissingCategory(t *testing.T) {
	svc, conn := newTestService(t)
	modelID := seedModel(t, conn, "Grand Tourer 620")
	missing := uuid.New().String()

	_, err := svc.Create(context.Background(), OptionInput{
		Name:             "Solar Panel 200W",
		Price:            "1250",
		VehicleModelID:   modelID.String(),
		OptionCategoryID: &missing,
		Type:             "vanari",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreateOptionRejectsBadPrice(t *testing.T) {
	svc, conn := newTestService(t)
	modelID := seedModel(t, conn, "Grand Tourer 620")

	_, err := svc.Create(context.Background(), OptionInput{
		Name:           "Solar Panel 200W",
		Price:          "free",
		VehicleModelID: modelID.String(),
		Type:           "vanari",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListForModelFiltersByType(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	modelID := seedModel(t, conn, "Grand Tourer 620")
	otherID := seedModel(t, conn, "Bush Ranger 540")

	_, err := svc.Create(ctx, OptionInput{Name: "Hitch", Price: "660", VehicleModelID: modelID.String(), Type: "manufacturer"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, OptionInput{Name: "Solar Panel", Price: "1250", VehicleModelID: modelID.String(), Type: "vanari"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, OptionInput{Name: "Bull Bar", Price: "900", VehicleModelID: otherID.String(), Type: "manufacturer"})
	require.NoError(t, err)

	rows, err := svc.ListForModel(ctx, modelID, enums.OptionTypeManufacturer)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hitch", rows[0].Name)
}

func TestListSearchesCategoryName(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	modelID := seedModel(t, conn, "Grand Tourer 620")

	category, err := svc.CreateCategory(ctx, CreateOptionCategoryInput{Name: "Towing", Type: "manufacturer"})
	require.NoError(t, err)
	categoryID := category.ID.String()

	_, err = svc.Create(ctx, OptionInput{
		Name:             "Hitch",
		Price:            "660",
		VehicleModelID:   modelID.String(),
		OptionCategoryID: &categoryID,
		Type:             "manufacturer",
	})
	require.NoError(t, err)

	page, err := svc.List(ctx, pagination.Params{}, "towing")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Hitch", page.Data[0].Name)
}

func TestBulkDelete(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	modelID := seedModel(t, conn, "Grand Tourer 620")

	option, err := svc.Create(ctx, OptionInput{Name: "Hitch", Price: "660", VehicleModelID: modelID.String(), Type: "manufacturer"})
	require.NoError(t, err)
	missing := uuid.New()

	result, err := svc.BulkDelete(ctx, []uuid.UUID{option.ID, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{option.ID.String()}, result.Deleted)
	require.Len(t, result.Failed, 1)
}
