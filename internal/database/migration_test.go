package database

import (
	"testing"
	"testing/fstest"

	leaft "github.com/leafthq/leaft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_catalog.sql": {Data: []byte("CREATE TABLE b ();")},
		"migrations/0001_init.sql":    {Data: []byte("CREATE TABLE a ();")},
		"migrations/README.md":        {Data: []byte("notes")},
	}

	migrations, err := LoadMigrations(fsys, "migrations")
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "init", migrations[0].Name)
	assert.Equal(t, "CREATE TABLE b ();", migrations[1].SQL)

	assert.Equal(t, []Migration{migrations[1]}, Pending(migrations, 1))
	assert.Empty(t, Pending(migrations, 2))
}

func TestLoadMigrationsRejectsBadNames(t *testing.T) {
	_, err := LoadMigrations(fstest.MapFS{"m/init.sql": {Data: []byte("")}}, "m")
	assert.Error(t, err)

	_, err = LoadMigrations(fstest.MapFS{
		"m/0001_a.sql": {Data: []byte("")},
		"m/1_b.sql":    {Data: []byte("")},
	}, "m")
	assert.ErrorContains(t, err, "already used")
}

func TestEmbeddedMigrations(t *testing.T) {
	migrations, err := LoadMigrations(leaft.MigrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, mig := range migrations {
		assert.Equal(t, i+1, mig.Version)
		assert.NotEmpty(t, mig.SQL)
	}
}
