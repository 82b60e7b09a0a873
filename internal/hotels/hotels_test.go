package hotels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/storefront-api/pkg/db/dbtest"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(dbtest.Open(t).DB()))
	require.NoError(t, err)
	return svc
}

func TestCreateHotel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateHotelInput{Name: "Triple Point", Rooms: "10", Postcode: "N1 9GU"})
	require.NoError(t, err)
	assert.Equal(t, 10, created.Rooms)

	_, err = svc.Create(ctx, CreateHotelInput{Name: "Triple Point", Rooms: "4"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.CodeOf(err))
	assert.Equal(t, "An hotel with the same name already exists!", pkgerrors.As(err).Message())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreateHotelRejectsBadRooms(t *testing.T) {
	svc := newTestService(t)

	for _, rooms := range []string{"0", "-2", "2.5", "many"} {
		_, err := svc.Create(context.Background(), CreateHotelInput{Name: "Inn", Rooms: rooms})
		require.Error(t, err, rooms)
		assert.Equal(t, "The number of rooms should be a positive integer.", pkgerrors.As(err).Message())
	}
}
