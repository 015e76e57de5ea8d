package main

import (
	"context"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// migrator 迁移命令所需的数据库连接
type migrator struct {
	db     *gorm.DB
	driver string
}

type migrateFunc func(ctx context.Context, cmd *cobra.Command, m migrator) error

// withDB 打开数据库连接(不自动迁移)后执行fn,结束时关闭连接
func withDB(configDir *string, fn migrateFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(*configDir)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		cfg.Database.AutoMigrate = false
		db, cleanup, err := relational.NewDB(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		return fn(cmd.Context(), cmd, migrator{db: db, driver: cfg.Database.Driver})
	}
}
