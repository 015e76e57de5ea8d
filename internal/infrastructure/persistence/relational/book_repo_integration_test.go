//go:build integration

package relational

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pg "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/repotest"
)

const postgresImage = "postgres:16-alpine"

// startPostgres 启动PostgreSQL容器并执行迁移,测试结束时自动清理
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := pg.Run(
		ctx,
		postgresImage,
		pg.WithDatabase("bookshelf"),
		pg.WithUsername("bookshelf"),
		pg.WithPassword("bookshelf"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "启动PostgreSQL容器失败")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("停止容器失败: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		URL:             connStr,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
		AutoMigrate:     true,
	}}
	db, cleanup, err := NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return db
}

func TestBookRepository_Postgres(t *testing.T) {
	db := startPostgres(t)

	repotest.Run(t, func(t *testing.T) book.Repository {
		require.NoError(t, db.Exec("TRUNCATE TABLE books RESTART IDENTITY").Error)
		return NewBookRepository(db)
	})
}

func TestMigrations_Postgres(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	version, err := MigrateVersion(ctx, db, config.DriverPostgres)
	require.NoError(t, err)
	require.Equal(t, int64(1), version)

	statuses, err := MigrateStatus(ctx, db, config.DriverPostgres)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	require.True(t, statuses[0].Applied)

	version, err = MigrateDown(ctx, db, config.DriverPostgres)
	require.NoError(t, err)
	require.Equal(t, int64(0), version)

	version, err = MigrateUp(ctx, db, config.DriverPostgres)
	require.NoError(t, err)
	require.Equal(t, int64(1), version)
}

func TestHealthChecker_Postgres(t *testing.T) {
	db := startPostgres(t)
	require.NoError(t, NewHealthChecker(db).Ping(context.Background()))
}
