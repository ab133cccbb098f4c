package colors

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanari-rv/caravan-configurator/pkg/db/testdb"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/pagination"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewRepository(testdb.Open(t)), nil)
}

func mustCreateType(t *testing.T, svc Service, name string) uuid.UUID {
	t.Helper()
	created, err := svc.CreateType(context.Background(), CreateColorTypeInput{Name: name})
	require.NoError(t, err)
	return created.ID
}

func TestColorTypeCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateType(ctx, CreateColorTypeInput{Name: "External Base Colours"})
	require.NoError(t, err)

	updated, err := svc.UpdateType(ctx, created.ID, UpdateColorTypeInput{Name: "External Decal Colours"})
	require.NoError(t, err)
	assert.Equal(t, "External Decal Colours", updated.Name)

	page, err := svc.ListTypes(ctx, pagination.Params{}, "decal")
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	require.NoError(t, svc.DeleteType(ctx, created.ID))
	_, err = svc.GetType(ctx, created.ID)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreateTypeDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateType(ctx, CreateColorTypeInput{Name: "External Base Colours"})
	require.NoError(t, err)
	_, err = svc.CreateType(ctx, CreateColorTypeInput{Name: "External Base Colours"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestColorCreateLoadsType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	typeID := mustCreateType(t, svc, "External Base Colours")

	created, err := svc.Create(ctx, CreateColorInput{
		Name:        "Arctic White",
		Code:        "#F5F5F5",
		ColorTypeID: typeID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.RecordStatusActive, created.Status)
	require.NotNil(t, created.ColorType)
	assert.Equal(t, "External Base Colours", created.ColorType.Name)
}

func TestColorCreateInvalidTypeID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateColorInput{
		Name:        "Arctic White",
		Code:        "#F5F5F5",
		ColorTypeID: "not-a-uuid",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestColorUpdateStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	typeID := mustCreateType(t, svc, "External Base Colours")

	created, err := svc.Create(ctx, CreateColorInput{
		Name:        "Arctic White",
		Code:        "#F5F5F5",
		ColorTypeID: typeID.String(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateColorInput{
		Name:        "Arctic White",
		Code:        "#F5F5F5",
		Status:      "inactive",
		ColorTypeID: typeID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.RecordStatusInactive, updated.Status)
}

func TestListActiveByTypeFiltersInactive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	baseID := mustCreateType(t, svc, "External Base Colours")
	decalID := mustCreateType(t, svc, "External Decal Colours")

	_, err := svc.Create(ctx, CreateColorInput{Name: "Arctic White", Code: "#FFF", ColorTypeID: baseID.String()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateColorInput{Name: "Retired Grey", Code: "#888", Status: "inactive", ColorTypeID: baseID.String()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateColorInput{Name: "Sunset Orange", Code: "#F60", ColorTypeID: decalID.String()})
	require.NoError(t, err)

	rows, err := svc.ListActiveByType(ctx, "External Base Colours")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Arctic White", rows[0].Name)
}

func TestColorBulkDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	typeID := mustCreateType(t, svc, "External Base Colours")

	created, err := svc.Create(ctx, CreateColorInput{Name: "Arctic White", Code: "#FFF", ColorTypeID: typeID.String()})
	require.NoError(t, err)
	missing := uuid.New()

	result, err := svc.BulkDelete(ctx, []uuid.UUID{created.ID, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID.String()}, result.Deleted)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, missing.String(), result.Failed[0].ID)
}
