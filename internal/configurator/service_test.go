package configurator

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vanari-rv/caravan-configurator/internal/colors"
	"github.com/vanari-rv/caravan-configurator/internal/modelimages"
	"github.com/vanari-rv/caravan-configurator/internal/options"
	"github.com/vanari-rv/caravan-configurator/internal/orders"
	"github.com/vanari-rv/caravan-configurator/internal/themes"
	"github.com/vanari-rv/caravan-configurator/internal/vehiclemodels"
	"github.com/vanari-rv/caravan-configurator/pkg/config"
	dbmodels "github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/db/testdb"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	pkgredis "github.com/vanari-rv/caravan-configurator/pkg/redis"
	"github.com/vanari-rv/caravan-configurator/pkg/shareconfig"
)

type fakeSessionStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{values: map[string]string{}}
}

func (f *fakeSessionStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value.(string)
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.values[key]
	if !ok {
		return "", pkgredis.Nil
	}
	return raw, nil
}

func (f *fakeSessionStore) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeSessionStore) SessionKey(sessionID string) string {
	return "configurator:" + sessionID
}

type fixture struct {
	svc     Service
	conn    *gorm.DB
	modelID uuid.UUID
	themeID uuid.UUID
	baseID  uuid.UUID
	decalID uuid.UUID
	hitchID uuid.UUID
	solarID uuid.UUID
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

	baseType := dbmodels.ColorType{Name: BaseColorTypeName}
	require.NoError(t, conn.Create(&baseType).Error)
	decalType := dbmodels.ColorType{Name: DecalColorTypeName}
	require.NoError(t, conn.Create(&decalType).Error)
	base := dbmodels.Color{Name: "Arctic White", Code: "#FFF", Status: "active", ColorTypeID: baseType.ID}
	require.NoError(t, conn.Create(&base).Error)
	decal := dbmodels.Color{Name: "Sunset Orange", Code: "#F60", Status: "active", ColorTypeID: decalType.ID}
	require.NoError(t, conn.Create(&decal).Error)

	hitch := dbmodels.AdditionalOption{
		Name:           "Weight Distribution Hitch",
		Price:          decimal.NewFromInt(660),
		VehicleModelID: model.ID,
		Type:           enums.OptionTypeManufacturer,
	}
	require.NoError(t, conn.Create(&hitch).Error)
	solar := dbmodels.AdditionalOption{
		Name:           "Solar Panel 200W",
		Price:          decimal.NewFromInt(1250),
		VehicleModelID: model.ID,
		Type:           enums.OptionTypeVanari,
	}
	require.NoError(t, conn.Create(&solar).Error)

	svc := NewService(
		config.ConfiguratorConfig{SessionTTL: time.Hour, ShareConfigLimit: shareconfig.DefaultMaxBytes},
		"http://localhost:8080",
		newFakeSessionStore(),
		vehiclemodels.NewService(vehiclemodels.NewRepository(conn), nil),
		themes.NewService(themes.NewRepository(conn), nil),
		colors.NewService(colors.NewRepository(conn), nil),
		options.NewService(options.NewRepository(conn), nil),
		modelimages.NewService(modelimages.NewRepository(conn), nil),
		orders.NewService(orders.NewRepository(conn), nil),
		nil,
	)

	return &fixture{
		svc:     svc,
		conn:    conn,
		modelID: model.ID,
		themeID: theme.ID,
		baseID:  base.ID,
		decalID: decal.ID,
		hitchID: hitch.ID,
		solarID: solar.ID,
	}
}

func (f *fixture) walkToStep(t *testing.T, target enums.WizardStep) *Session {
	t.Helper()
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	steps := []AdvanceInput{
		{Step: 1, Model: &ModelStep{VehicleModelID: f.modelID.String()}},
		{Step: 2, Theme: &ThemeStep{ThemeID: ptr(f.themeID.String())}},
		{Step: 3, Colors: &ColorStep{BaseColorID: ptr(f.baseID.String()), DecalColorID: ptr(f.decalID.String())}},
		{Step: 4, Options: &OptionsStep{OptionIDs: []string{f.hitchID.String()}}},
		{Step: 5, Options: &OptionsStep{}},
	}
	for _, in := range steps {
		if session.Step >= target {
			break
		}
		session, err = f.svc.Advance(ctx, session.ID, in)
		require.NoError(t, err)
	}
	return session
}

func ptr(s string) *string { return &s }

func TestStartSession(t *testing.T) {
	f := newFixture(t)

	session, err := f.svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enums.WizardStepModel, session.Step)
	assert.NotEmpty(t, session.ID)

	loaded, err := f.svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
}

func TestGetSessionExpired(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetSession(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestAdvanceRejectsWrongStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.Advance(ctx, session.ID, AdvanceInput{
		Step:   3,
		Colors: &ColorStep{},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestAdvanceThroughWizard(t *testing.T) {
	f := newFixture(t)
	session := f.walkToStep(t, enums.WizardStepSaveShare)

	assert.Equal(t, enums.WizardStepSaveShare, session.Step)
	require.NotNil(t, session.VehicleModelID)
	assert.Equal(t, f.modelID, *session.VehicleModelID)
	require.NotNil(t, session.ThemeID)
	require.Len(t, session.ManufacturerOptionIDs, 1)
}

func TestBackKeepsSelections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.walkToStep(t, enums.WizardStepExternalColors)

	back, err := f.svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.WizardStepTheme, back.Step)
	require.NotNil(t, back.ThemeID)
	assert.Equal(t, f.themeID, *back.ThemeID)
}

func TestBackOnFirstStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.Back(ctx, session.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestSwitchingModelResetsDownstream(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.walkToStep(t, enums.WizardStepManufacturerOptions)

	// Walk back to step one and pick a different model.
	for session.Step > enums.WizardStepModel {
		var err error
		session, err = f.svc.Back(ctx, session.ID)
		require.NoError(t, err)
	}

	category := dbmodels.Category{Name: "Off-Road"}
	require.NoError(t, f.conn.Create(&category).Error)
	other := dbmodels.VehicleModel{
		Name:        "Bush Ranger 540",
		SleepPerson: 2,
		CategoryID:  category.ID,
		BasePrice:   decimal.NewFromInt(64000),
		Price:       decimal.NewFromInt(64000),
	}
	require.NoError(t, f.conn.Create(&other).Error)

	session, err := f.svc.Advance(ctx, session.ID, AdvanceInput{
		Step:  1,
		Model: &ModelStep{VehicleModelID: other.ID.String()},
	})
	require.NoError(t, err)
	assert.Nil(t, session.ThemeID)
	assert.Nil(t, session.BaseColorID)
	assert.Empty(t, session.ManufacturerOptionIDs)
}

func TestPriceAddsSelectedOptions(t *testing.T) {
	f := newFixture(t)
	session := f.walkToStep(t, enums.WizardStepVanariOptions)

	breakdown, err := f.svc.Price(context.Background(), session.ID)
	require.NoError(t, err)
	assert.True(t, breakdown.BasePrice.Equal(decimal.NewFromInt(79500)))
	require.Len(t, breakdown.Options, 1)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(80160)), "79500 + 660 = 80160, got %s", breakdown.Total)
}

func TestPriceSkipsRemovedOptions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.walkToStep(t, enums.WizardStepVanariOptions)

	// The catalog row disappears after selection; price treats it as zero.
	require.NoError(t, f.conn.Delete(&dbmodels.AdditionalOption{}, "id = ?", f.hitchID).Error)

	breakdown, err := f.svc.Price(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, breakdown.Options)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(79500)))
}

func TestStepCatalogPerStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	catalog, err := f.svc.StepCatalog(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "model", catalog.Step)
	require.Len(t, catalog.Models, 1)

	session = f.walkToStep(t, enums.WizardStepExternalColors)
	catalog, err = f.svc.StepCatalog(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, catalog.BaseColors, 1)
	require.Len(t, catalog.DecalColors, 1)
	assert.Equal(t, "Arctic White", catalog.BaseColors[0].Name)

	session = f.walkToStep(t, enums.WizardStepManufacturerOptions)
	catalog, err = f.svc.StepCatalog(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, catalog.Options, 1)
	assert.Equal(t, "Weight Distribution Hitch", catalog.Options[0].Name)
}

func TestSubmitCreatesOrderAndShareURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.walkToStep(t, enums.WizardStepSaveShare)

	result, err := f.svc.Submit(ctx, session.ID, SubmitInput{
		Customer: orders.CustomerInput{
			FirstName: "Alex",
			LastName:  "Nguyen",
			Email:     "alex@example.com",
			Phone:     "0400000000",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.True(t, result.Order.TotalPrice.Equal(decimal.NewFromInt(80160)))
	require.Len(t, result.Order.Colors, 2)
	require.Len(t, result.Order.Options, 1)

	parsed, err := url.Parse(result.ShareURL)
	require.NoError(t, err)
	assert.Equal(t, "/order-summary", parsed.Path)
	assert.Equal(t, result.Order.ID.String(), parsed.Query().Get("order"))

	payload, err := f.svc.DecodeShare(parsed.Query().Get(shareconfig.ParamName))
	require.NoError(t, err)
	assert.Equal(t, f.modelID.String(), payload.Model)
	assert.Equal(t, result.Order.ID.String(), payload.OrderID)
	require.NotNil(t, payload.ModelData)
	assert.Equal(t, "Grand Tourer 620", payload.ModelData.Name)
	assert.True(t, payload.ManufacturerOptions[f.hitchID.String()])

	// A submitted session cannot be advanced or submitted again.
	_, err = f.svc.Submit(ctx, session.ID, SubmitInput{Customer: orders.CustomerInput{
		FirstName: "Alex", LastName: "Nguyen", Email: "alex@example.com", Phone: "0400000000",
	}})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

type countingOptions struct {
	options.Service
	getMany int
}

func (c *countingOptions) GetMany(ctx context.Context, ids []uuid.UUID) ([]dbmodels.AdditionalOption, error) {
	c.getMany++
	return c.Service.GetMany(ctx, ids)
}

func TestSubmitFetchesOptionsOnce(t *testing.T) {
	f := newFixture(t)
	counting := &countingOptions{Service: options.NewService(options.NewRepository(f.conn), nil)}
	f.svc = NewService(
		config.ConfiguratorConfig{SessionTTL: time.Hour, ShareConfigLimit: shareconfig.DefaultMaxBytes},
		"http://localhost:8080",
		newFakeSessionStore(),
		vehiclemodels.NewService(vehiclemodels.NewRepository(f.conn), nil),
		themes.NewService(themes.NewRepository(f.conn), nil),
		colors.NewService(colors.NewRepository(f.conn), nil),
		counting,
		modelimages.NewService(modelimages.NewRepository(f.conn), nil),
		orders.NewService(orders.NewRepository(f.conn), nil),
		nil,
	)
	session := f.walkToStep(t, enums.WizardStepSaveShare)

	counting.getMany = 0
	result, err := f.svc.Submit(context.Background(), session.ID, SubmitInput{
		Customer: orders.CustomerInput{
			FirstName: "Alex",
			LastName:  "Nguyen",
			Email:     "alex@example.com",
			Phone:     "0400000000",
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Order.Options, 1)
	assert.Equal(t, 1, counting.getMany)
}

func TestSubmitRequiresFinalStep(t *testing.T) {
	f := newFixture(t)
	session := f.walkToStep(t, enums.WizardStepExternalColors)

	_, err := f.svc.Submit(context.Background(), session.ID, SubmitInput{
		Customer: orders.CustomerInput{
			FirstName: "Alex",
			LastName:  "Nguyen",
			Email:     "alex@example.com",
			Phone:     "0400000000",
		},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestDecodeShareRejectsOversized(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.DecodeShare(strings.Repeat("a", shareconfig.DefaultMaxBytes+1))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
