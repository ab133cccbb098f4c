package modelimages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbmodels "github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/db/testdb"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

type fixture struct {
	svc     Service
	modelID uuid.UUID
	baseID  uuid.UUID
	decalID uuid.UUID
	themeID uuid.UUID
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

	colorType := dbmodels.ColorType{Name: "External Base Colours"}
	require.NoError(t, conn.Create(&colorType).Error)
	base := dbmodels.Color{Name: "Arctic White", Code: "#FFF", Status: "active", ColorTypeID: colorType.ID}
	require.NoError(t, conn.Create(&base).Error)
	decal := dbmodels.Color{Name: "Sunset Orange", Code: "#F60", Status: "active", ColorTypeID: colorType.ID}
	require.NoError(t, conn.Create(&decal).Error)

	theme := dbmodels.Theme{
		Name:          "Coastal",
		FlooringName:  "Oak Plank",
		CabinetryName: "White Gloss",
		TableTopName:  "Stone Grey",
		SeatingName:   "Navy Weave",
	}
	require.NoError(t, conn.Create(&theme).Error)

	return &fixture{
		svc:     NewService(NewRepository(conn), nil),
		modelID: model.ID,
		baseID:  base.ID,
		decalID: decal.ID,
		themeID: theme.ID,
	}
}

func TestColorImageCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateColorImage(ctx, ColorImageInput{
		VehicleModelID: f.modelID.String(),
		BaseColorID:    f.baseID.String(),
		DecalColorID:   f.decalID.String(),
		Image:          "uploads/renders/gt620-white-orange.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, created.BaseColor)
	assert.Equal(t, "Arctic White", created.BaseColor.Name)

	found, err := f.svc.FindColorImage(ctx, f.modelID, f.baseID, f.decalID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	updated, err := f.svc.UpdateColorImage(ctx, created.ID, ColorImageInput{
		VehicleModelID: f.modelID.String(),
		BaseColorID:    f.baseID.String(),
		DecalColorID:   f.decalID.String(),
		Image:          "uploads/renders/gt620-v2.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/renders/gt620-v2.jpg", updated.Image)

	require.NoError(t, f.svc.DeleteColorImage(ctx, created.ID))
	missing, err := f.svc.FindColorImage(ctx, f.modelID, f.baseID, f.decalID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestColorImageDuplicatePair(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := ColorImageInput{
		VehicleModelID: f.modelID.String(),
		BaseColorID:    f.baseID.String(),
		DecalColorID:   f.decalID.String(),
		Image:          "uploads/renders/one.jpg",
	}
	_, err := f.svc.CreateColorImage(ctx, in)
	require.NoError(t, err)

	_, err = f.svc.CreateColorImage(ctx, in)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestThemeImageCRUDAndLookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateThemeImage(ctx, ThemeImageInput{
		VehicleModelID: f.modelID.String(),
		ThemeID:        f.themeID.String(),
		Image:          "uploads/renders/gt620-coastal.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Theme)
	assert.Equal(t, "Coastal", created.Theme.Name)

	found, err := f.svc.FindThemeImage(ctx, f.modelID, f.themeID)
	require.NoError(t, err)
	require.NotNil(t, found)

	none, err := f.svc.FindThemeImage(ctx, f.modelID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestThemeImageList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateThemeImage(ctx, ThemeImageInput{
		VehicleModelID: f.modelID.String(),
		ThemeID:        f.themeID.String(),
		Image:          "uploads/renders/gt620-coastal.jpg",
	})
	require.NoError(t, err)

	page, err := f.svc.ListThemeImages(ctx, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].VehicleModel)
}

func TestBulkDeleteColorImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateColorImage(ctx, ColorImageInput{
		VehicleModelID: f.modelID.String(),
		BaseColorID:    f.baseID.String(),
		DecalColorID:   f.decalID.String(),
		Image:          "uploads/renders/one.jpg",
	})
	require.NoError(t, err)
	missing := uuid.New()

	result, err := f.svc.BulkDeleteColorImages(ctx, []uuid.UUID{created.ID, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID.String()}, result.Deleted)
	require.Len(t, result.Failed, 1)
}
