package relational

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，按database.driver选择MySQL或PostgreSQL方言
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. log_sql开启时打印SQL
// 4. auto_migrate开启时执行goose迁移到最新版本
//
// 返回的cleanup函数关闭连接池，由wire在程序退出时调用
func NewDB(cfg *config.Config) (*gorm.DB, func(), error) {
	dialector, err := newDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.Database.LogSQL {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Get().Warn("关闭数据库连接失败", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.Get().Info("数据库连接成功",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	if cfg.Database.AutoMigrate {
		if _, err := MigrateUp(ctx, db, cfg.Database.Driver); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, cleanup, nil
}

// newDialector 根据驱动名创建GORM方言
func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// HealthChecker 数据库健康检查
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker 创建健康检查器
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Ping 检查连接池是否可用
func (h *HealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
