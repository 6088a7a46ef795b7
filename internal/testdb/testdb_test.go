package testdb

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/migration"
)

func TestOpenAppliesEveryMigration(t *testing.T) {
	db := Open(t)

	for _, table := range []string{"user", "venue", "orders", "message", "news"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	pending, err := migration.New(db).Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRollbackDropsLastBatch(t *testing.T) {
	db := Open(t)
	r := migration.New(db).WithOutput(io.Discard)

	require.NoError(t, r.Rollback())
	assert.False(t, db.Migrator().HasTable("news"))
	assert.False(t, db.Migrator().HasTable("user"))

	pending, err := r.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 5)

	require.NoError(t, r.Run())
	assert.True(t, db.Migrator().HasTable("news"))
}

func TestMySQLSchema(t *testing.T) {
	db := OpenMySQL(t)

	Insert(t, db, &models.Venue{VenueName: "court", Price: 10})
	var got models.Venue
	require.NoError(t, db.First(&got, "venue_name = ?", "court").Error)
	assert.Equal(t, 10, got.Price)
}
