// Package testdb opens migrated databases for repository and service tests.
package testdb

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	_ "github.com/shashiranjanraj/venuebook/database/migrations"
	"github.com/shashiranjanraj/venuebook/pkg/database"
	"github.com/shashiranjanraj/venuebook/pkg/migration"
)

// Open returns a fresh in-memory sqlite database with every migration
// applied. It is closed when t ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	migrate(t, db)
	return db
}

// OpenMySQL starts a MySQL container and returns a migrated connection to
// it. It skips under -short or when no container runtime is reachable.
func OpenMySQL(t testing.TB) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MySQL container in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mysql:8.0",
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "root",
				"MYSQL_DATABASE":      "venuebook",
			},
			WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("container runtime unavailable: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "3306")
	require.NoError(t, err)

	dsn := fmt.Sprintf("root:root@tcp(%s:%s)/venuebook?charset=utf8mb4&parseTime=True&loc=Local", host, port.Port())
	db, err := database.Open("mysql", dsn)
	require.NoError(t, err)
	migrate(t, db)
	return db
}

func migrate(t testing.TB, db *gorm.DB) {
	t.Helper()
	require.NoError(t, migration.New(db).WithOutput(io.Discard).Run())
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}

// Insert creates each row, failing t on the first error.
func Insert(t testing.TB, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}
