package models_test

import (
	"testing"

	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	store := models.NewStore("test")
	b := models.NewBuilder(store)

	dev, err := b.Device("leaf1", diffsync.Attrs{models.AttrSite: "hq", models.AttrRole: "leaf"})
	require.NoError(t, err)
	_, err = b.Device("leaf2", diffsync.Attrs{models.AttrSite: "hq"})
	require.NoError(t, err)

	assert.Len(t, store.GetAll(models.TypeSite), 1, "Site is created once and reused")
	_, err = store.Get(models.TypeDevice, diffsync.Identity{"leaf2"})
	require.NoError(t, err)

	_, err = b.Interface("leaf1", "eth0", diffsync.Attrs{models.AttrMTU: 1500})
	require.NoError(t, err)
	_, err = b.IPAddress("leaf1", "eth0", "10.0.0.1/31", nil)
	require.NoError(t, err)
	_, err = b.Cable("leaf1", "eth0", "leaf2", "eth0", diffsync.Attrs{models.AttrStatus: "planned"})
	require.NoError(t, err)

	assert.Equal(t, []string{"leaf1__eth0"}, dev.ChildIDs(models.FieldInterfaces))
	assert.Equal(t, 6, store.Count())
	require.NoError(t, store.Validate())

	t.Run("MissingSite", func(t *testing.T) {
		_, err := b.Device("spine1", nil)
		assert.ErrorContains(t, err, "site is required")
	})

	t.Run("MissingParent", func(t *testing.T) {
		_, err := b.Interface("ghost", "eth0", nil)
		assert.ErrorIs(t, err, diffsync.ErrObjectNotPresent)

		_, err = b.IPAddress("leaf1", "eth9", "10.0.0.2/31", nil)
		assert.ErrorIs(t, err, diffsync.ErrObjectNotPresent)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := b.Interface("leaf1", "eth0", nil)
		assert.ErrorIs(t, err, diffsync.ErrDuplicateObject)
	})
}
