package database

import (
	"context"
	"errors"
	"testing"

	coredb "inventory-sync/core/database"
	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := coredb.Connect(coredb.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, NewAdapter(db, nil).Migrate(context.Background()))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []any{
		&SiteRecord{Name: "hq"},
		&DeviceRecord{Name: "leaf1", Site: "hq", Role: "leaf"},
		&DeviceRecord{Name: "leaf2", Site: "hq", Role: "leaf"},
		&InterfaceRecord{Device: "leaf1", Name: "eth0", Description: "old", Enabled: true},
		&InterfaceRecord{Device: "leaf1", Name: "eth9", Description: "decommissioned"},
		&InterfaceRecord{Device: "leaf2", Name: "eth0", Enabled: true},
		&CableRecord{SideADevice: "leaf1", SideAInterface: "eth0", SideZDevice: "leaf2", SideZInterface: "eth0", Status: "planned"},
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}

func desired(t *testing.T) *diffsync.Store {
	t.Helper()
	store := models.NewStore("desired")
	b := models.NewBuilder(store)
	for _, dev := range []string{"leaf1", "leaf2"} {
		_, err := b.Device(dev, diffsync.Attrs{models.AttrSite: "hq", models.AttrRole: "leaf"})
		require.NoError(t, err)
	}
	_, err := b.Interface("leaf1", "eth0", diffsync.Attrs{models.AttrDescription: "uplink", models.AttrEnabled: true})
	require.NoError(t, err)
	_, err = b.Interface("leaf1", "eth1", diffsync.Attrs{models.AttrMTU: 9000, models.AttrEnabled: true})
	require.NoError(t, err)
	_, err = b.IPAddress("leaf1", "eth1", "10.0.0.1/31", diffsync.Attrs{models.AttrRole: "p2p"})
	require.NoError(t, err)
	_, err = b.Interface("leaf2", "eth0", diffsync.Attrs{models.AttrEnabled: true})
	require.NoError(t, err)
	_, err = b.Cable("leaf1", "eth0", "leaf2", "eth0", diffsync.Attrs{models.AttrStatus: "connected"})
	require.NoError(t, err)
	return store
}

func TestAdapter_CheckSchema(t *testing.T) {
	db, err := coredb.Connect(coredb.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	adapter := NewAdapter(db, zap.NewNop())

	err = adapter.CheckSchema()
	assert.ErrorContains(t, err, "table sites is missing columns [name]")

	err = adapter.Populate(context.Background(), models.NewStore("current"))
	assert.Error(t, err)

	require.NoError(t, adapter.Migrate(context.Background()))
	assert.NoError(t, adapter.CheckSchema())
}

func TestAdapter_Populate(t *testing.T) {
	db := setupSQLite(t)
	seed(t, db)

	store := models.NewStore("current")
	require.NoError(t, NewAdapter(db, nil).Populate(context.Background(), store))
	require.NoError(t, store.Validate())

	assert.Equal(t, 7, store.Count())
	dev, err := store.Get(models.TypeDevice, diffsync.Identity{"leaf1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf1__eth0", "leaf1__eth9"}, dev.ChildIDs(models.FieldInterfaces))

	entry, ok := store.Registry().Lookup(models.TypeInterface)
	require.True(t, ok)
	assert.IsType(t, &Handler{}, entry.Handler, "Populate installs write-through handlers")
}

func TestAdapter_SyncWritesThrough(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	seed(t, db)

	adapter := NewAdapter(db, nil)
	current := models.NewStore("current")
	require.NoError(t, adapter.Populate(ctx, current))

	src := desired(t)
	differ := models.NewDiffer(nil)
	report, err := diffsync.NewSyncer(differ, nil).Sync(ctx, current, src)
	require.NoError(t, err)
	require.True(t, report.OK())

	var eth0 InterfaceRecord
	require.NoError(t, db.Where("device = ? AND name = ?", "leaf1", "eth0").First(&eth0).Error)
	assert.Equal(t, "uplink", eth0.Description)

	var eth1 InterfaceRecord
	require.NoError(t, db.Where("device = ? AND name = ?", "leaf1", "eth1").First(&eth1).Error)
	assert.Equal(t, 9000, eth1.MTU)

	var count int64
	require.NoError(t, db.Model(&InterfaceRecord{}).Where("name = ?", "eth9").Count(&count).Error)
	assert.Zero(t, count)

	var addr IPAddressRecord
	require.NoError(t, db.First(&addr).Error)
	assert.Equal(t, "10.0.0.1/31", addr.Address)

	var cable CableRecord
	require.NoError(t, db.First(&cable).Error)
	assert.Equal(t, "connected", cable.Status)

	// A fresh read of the database matches the desired inventory.
	reloaded := models.NewStore("reloaded")
	require.NoError(t, adapter.Populate(ctx, reloaded))
	assert.False(t, differ.Diff(reloaded, src).HasDiffs())
}

func TestHandler_CreateFailureIsRecoverable(t *testing.T) {
	db, mock := setupMockDB(t)
	store := models.NewStore("current")
	h := &Handler{db: db, table: tables[1]}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `devices`").WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	m, err := h.Create(context.Background(), store, diffsync.Identity{"leaf1"}, diffsync.Attrs{models.AttrSite: "hq"})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, diffsync.ErrObjectCrud)
	assert.ErrorContains(t, err, "duplicate entry")
	assert.Zero(t, store.Count(), "Store is untouched when the row is rejected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_InvalidAttrsAreRecoverable(t *testing.T) {
	db, mock := setupMockDB(t)
	h := &Handler{db: db, table: tables[2]}

	_, err := h.Create(context.Background(), models.NewStore("current"),
		diffsync.Identity{"leaf1", "eth0"}, diffsync.Attrs{models.AttrMTU: "jumbo"})
	assert.ErrorIs(t, err, diffsync.ErrObjectCrud)
	assert.NoError(t, mock.ExpectationsWereMet(), "Nothing is written")
}

func TestHandler_UpdateFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	store := models.NewStore("current")
	_, err := models.NewBuilder(store).Device("leaf1", diffsync.Attrs{models.AttrSite: "hq", models.AttrRole: "leaf"})
	require.NoError(t, err)
	h := &Handler{db: db, table: tables[1]}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `devices`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err = h.Update(context.Background(), store, diffsync.Identity{"leaf1"}, diffsync.Attrs{models.AttrRole: "spine"})
	var crudErr *diffsync.CrudError
	require.ErrorAs(t, err, &crudErr)
	assert.Equal(t, diffsync.ActionUpdate, crudErr.Action)
	assert.Equal(t, "leaf1", crudErr.ID)

	dev, _ := store.Get(models.TypeDevice, diffsync.Identity{"leaf1"})
	assert.Equal(t, "leaf", dev.Attrs()[models.AttrRole])
}

func TestSync_DatabaseFailureContinues(t *testing.T) {
	db, mock := setupMockDB(t)
	dst := models.NewStore("current")
	require.NoError(t, Install(db, dst.Registry()))

	src := models.NewStore("desired")
	b := models.NewBuilder(src)
	_, err := b.Site("hq")
	require.NoError(t, err)
	_, err = b.Site("lab")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sites`").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sites`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	report, err := diffsync.NewSyncer(models.NewDiffer(nil), nil).Sync(context.Background(), dst, src)
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "hq", report.Failures[0].ID)
	assert.Equal(t, 1, report.Counts()[diffsync.ActionCreate])

	_, err = dst.Get(models.TypeSite, diffsync.Identity{"lab"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_SyncMovesDevice(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	seed(t, db)

	adapter := NewAdapter(db, nil)
	current := models.NewStore("current")
	require.NoError(t, adapter.Populate(ctx, current))

	src := models.NewStore("desired")
	require.NoError(t, NewAdapter(db, nil).Populate(ctx, src))
	_, err := models.NewBuilder(src).Site("lab")
	require.NoError(t, err)
	leaf2, err := src.Get(models.TypeDevice, diffsync.Identity{"leaf2"})
	require.NoError(t, err)
	require.NoError(t, leaf2.(*models.Device).SetAttrs(diffsync.Attrs{models.AttrSite: "lab"}))

	differ := models.NewDiffer(nil)
	report, err := diffsync.NewSyncer(differ, nil).Sync(ctx, current, src)
	require.NoError(t, err)
	require.True(t, report.OK())
	assert.Equal(t, 1, report.Counts()[diffsync.ActionUpdate])

	var dev DeviceRecord
	require.NoError(t, db.Where("name = ?", "leaf2").First(&dev).Error)
	assert.Equal(t, "lab", dev.Site)

	var count int64
	require.NoError(t, db.Model(&InterfaceRecord{}).Where("device = ?", "leaf2").Count(&count).Error)
	assert.Equal(t, int64(1), count, "Interfaces stay with the moved device")

	reloaded := models.NewStore("reloaded")
	require.NoError(t, adapter.Populate(ctx, reloaded))
	assert.False(t, differ.Diff(reloaded, src).HasDiffs())
}

func TestHandler_StoreRejectionWritesNothing(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateCreate", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := models.NewStore("current")
		_, err := models.NewBuilder(store).Device("leaf1", diffsync.Attrs{models.AttrSite: "hq"})
		require.NoError(t, err)
		h := &Handler{db: db, table: tables[1]}

		_, err = h.Create(ctx, store, diffsync.Identity{"leaf1"}, diffsync.Attrs{models.AttrSite: "lab"})
		assert.ErrorIs(t, err, diffsync.ErrDuplicateObject)
		assert.NotErrorIs(t, err, diffsync.ErrObjectCrud)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := &Handler{db: db, table: tables[1]}

		_, err := h.Update(ctx, models.NewStore("current"), diffsync.Identity{"leaf1"}, diffsync.Attrs{models.AttrRole: "spine"})
		assert.ErrorIs(t, err, diffsync.ErrObjectNotPresent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateInvalidAttrs", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := models.NewStore("current")
		b := models.NewBuilder(store)
		_, err := b.Device("leaf1", diffsync.Attrs{models.AttrSite: "hq"})
		require.NoError(t, err)
		_, err = b.Interface("leaf1", "eth0", diffsync.Attrs{models.AttrMTU: 1500})
		require.NoError(t, err)
		h := &Handler{db: db, table: tables[2]}

		_, err = h.Update(ctx, store, diffsync.Identity{"leaf1", "eth0"}, diffsync.Attrs{models.AttrMTU: "jumbo"})
		assert.ErrorIs(t, err, diffsync.ErrObjectCrud)
		assert.NoError(t, mock.ExpectationsWereMet())

		intf, _ := store.Get(models.TypeInterface, diffsync.Identity{"leaf1", "eth0"})
		assert.Equal(t, 1500, intf.Attrs()[models.AttrMTU])
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := &Handler{db: db, table: tables[1]}

		_, err := h.Delete(ctx, models.NewStore("current"), diffsync.Identity{"leaf1"}, diffsync.Attrs{models.AttrSite: "hq"})
		assert.ErrorIs(t, err, diffsync.ErrObjectNotPresent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
