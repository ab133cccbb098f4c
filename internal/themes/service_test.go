package themes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanari-rv/caravan-configurator/pkg/db/testdb"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewRepository(testdb.Open(t)), nil)
}

func coastalInput() ThemeInput {
	variant := "Driftwood"
	return ThemeInput{
		Name:                "Coastal",
		FlooringName:        "Oak Plank",
		FlooringVariantName: &variant,
		CabinetryName:       "White Gloss",
		TableTopName:        "Stone Grey",
		SeatingName:         "Navy Weave",
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, coastalInput())
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coastal", fetched.Name)
	require.NotNil(t, fetched.FlooringVariantName)
	assert.Equal(t, "Driftwood", *fetched.FlooringVariantName)
	assert.Nil(t, fetched.SeatingVariantName)
}

func TestUpdateClearsVariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, coastalInput())
	require.NoError(t, err)

	in := coastalInput()
	in.Name = "Coastal Revised"
	in.FlooringVariantName = nil

	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Coastal Revised", updated.Name)
	assert.Nil(t, updated.FlooringVariantName)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.New(), coastalInput())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListSearchMatchesSlots(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, coastalInput())
	require.NoError(t, err)

	outback := coastalInput()
	outback.Name = "Outback"
	outback.CabinetryName = "Smoked Timber"
	_, err = svc.Create(ctx, outback)
	require.NoError(t, err)

	page, err := svc.List(ctx, pagination.Params{}, "timber")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Outback", page.Data[0].Name)
}

func TestBulkDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, coastalInput())
	require.NoError(t, err)
	missing := uuid.New()

	result, err := svc.BulkDelete(ctx, []uuid.UUID{created.ID, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID.String()}, result.Deleted)
	require.Len(t, result.Failed, 1)
}
