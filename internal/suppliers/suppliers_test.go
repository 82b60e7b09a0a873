package suppliers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/storefront-api/pkg/db/dbtest"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

func TestListAndExists(t *testing.T) {
	client := dbtest.Open(t)
	repo := NewRepository(client.DB())
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	first := models.Supplier{SupplierName: "Acme"}
	require.NoError(t, client.DB().Create(&first).Error)
	require.NoError(t, client.DB().Create(&models.Supplier{SupplierName: "Leaf Co"}).Error)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].SupplierName)

	found, err := repo.ExistsByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.ExistsByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}
