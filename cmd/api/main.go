package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// @title        Bookshelf API
// @version      1.0
// @description  图书CRUD服务
// @host         localhost:8080
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 根命令,不带子命令时等同于serve
func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "图书CRUD服务",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configDir, false)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "", "配置文件目录(默认./config或当前目录)")

	root.AddCommand(newServeCmd(&configDir), newMigrateCmd(&configDir))
	return root
}

func newServeCmd(configDir *string) *cobra.Command {
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configDir, inMemory)
		},
	}
	cmd.Flags().BoolVar(&inMemory, "memory", false, "使用内存仓储(不连接数据库)")
	return cmd
}

// setup 加载配置并安装进程级logger
func setup(configDir string) (*config.Config, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	logger.Set(log)

	return cfg, nil
}

func runServe(ctx context.Context, configDir string, inMemory bool) error {
	cfg, err := setup(configDir)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()
	log.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("memory", inMemory),
	)

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(tracing.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			return fmt.Errorf("初始化追踪失败: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("关闭追踪失败", zap.Error(err))
			}
		}()
	}

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	var (
		app     *App
		cleanup = func() {}
	)
	if inMemory {
		app, err = InitializeMemoryApp(cfg)
	} else {
		app, cleanup, err = InitializeApp(cfg)
	}
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

func newMigrateCmd(configDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "数据库迁移",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "执行全部未应用的迁移",
			RunE: withDB(configDir, func(ctx context.Context, cmd *cobra.Command, m migrator) error {
				version, err := relational.MigrateUp(ctx, m.db, m.driver)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "当前版本: %d\n", version)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "回滚最近一次迁移",
			RunE: withDB(configDir, func(ctx context.Context, cmd *cobra.Command, m migrator) error {
				version, err := relational.MigrateDown(ctx, m.db, m.driver)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "当前版本: %d\n", version)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "查看迁移状态",
			RunE: withDB(configDir, func(ctx context.Context, cmd *cobra.Command, m migrator) error {
				statuses, err := relational.MigrateStatus(ctx, m.db, m.driver)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s %s\n", s.Version, state, s.Path)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "查看当前迁移版本",
			RunE: withDB(configDir, func(ctx context.Context, cmd *cobra.Command, m migrator) error {
				version, err := relational.MigrateVersion(ctx, m.db, m.driver)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", version)
				return nil
			}),
		},
	)
	return cmd
}
