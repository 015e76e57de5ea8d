package relational

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/migrations"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// newMigrator 基于内嵌迁移脚本创建goose Provider
// 脚本目录与驱动同名(migrations/mysql、migrations/postgres)
func newMigrator(db *gorm.DB, driver string) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case config.DriverMySQL:
		dialect = goose.DialectMySQL
	case config.DriverPostgres:
		dialect = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", driver)
	}

	fsys, err := fs.Sub(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("加载迁移脚本失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	return goose.NewProvider(dialect, sqlDB, fsys)
}

// MigrateUp 执行全部未应用的迁移,返回迁移后的版本号
func MigrateUp(ctx context.Context, db *gorm.DB, driver string) (int64, error) {
	p, err := newMigrator(db, driver)
	if err != nil {
		return 0, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("执行迁移失败: %w", err)
	}
	for _, r := range results {
		logger.Get().Info("已应用迁移",
			zap.Int64("version", r.Source.Version),
			zap.Duration("duration", r.Duration),
		)
	}

	return p.GetDBVersion(ctx)
}

// MigrateDown 回滚最近一次迁移,返回回滚后的版本号
func MigrateDown(ctx context.Context, db *gorm.DB, driver string) (int64, error) {
	p, err := newMigrator(db, driver)
	if err != nil {
		return 0, err
	}

	result, err := p.Down(ctx)
	if err != nil {
		return 0, fmt.Errorf("回滚迁移失败: %w", err)
	}
	logger.Get().Info("已回滚迁移", zap.Int64("version", result.Source.Version))

	return p.GetDBVersion(ctx)
}

// MigrationStatus 单个迁移脚本的状态
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// MigrateStatus 列出全部迁移脚本及是否已应用
func MigrateStatus(ctx context.Context, db *gorm.DB, driver string) ([]MigrationStatus, error) {
	p, err := newMigrator(db, driver)
	if err != nil {
		return nil, err
	}

	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询迁移状态失败: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// MigrateVersion 当前数据库迁移版本
func MigrateVersion(ctx context.Context, db *gorm.DB, driver string) (int64, error) {
	p, err := newMigrator(db, driver)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}
