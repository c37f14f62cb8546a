package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE devices (id INTEGER PRIMARY KEY, name TEXT, role TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "devices")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])

	// PRAGMA table_info returns an empty result for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE interfaces (id INTEGER PRIMARY KEY, device TEXT, name TEXT)").Error)

	missing, err := MissingColumns(db, "interfaces", []string{"device", "name", "mtu", "is_lag"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mtu", "is_lag"}, missing)

	missing, err = MissingColumns(db, "cables", []string{"status"})
	require.NoError(t, err)
	assert.Equal(t, []string{"status"}, missing)
}
