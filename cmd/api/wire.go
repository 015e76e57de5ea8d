//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链：
// *App ← *gin.Engine ← Handler ← UseCase ← book.Service ← book.Repository ← *gorm.DB ← *config.Config

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// relationalSet 数据库实现
var relationalSet = wire.NewSet(
	relational.NewDB,
	relational.NewBookRepository,
	relational.NewHealthChecker,
	wire.Bind(new(handler.Pinger), new(*relational.HealthChecker)),
)

// memorySet 内存实现(无需数据库)
var memorySet = wire.NewSet(
	memory.NewBookRepository,
	provideNoPinger,
)

// domainSet 领域层
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// interfaceSet HTTP层
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
	provideRouterOptions,
	router.New,
	newApp,
)

// InitializeApp 使用数据库仓储组装应用
// cleanup关闭数据库连接池
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(relationalSet, domainSet, applicationSet, interfaceSet)
	return nil, nil, nil
}

// InitializeMemoryApp 使用内存仓储组装应用,进程退出后数据丢失
func InitializeMemoryApp(cfg *config.Config) (*App, error) {
	wire.Build(memorySet, domainSet, applicationSet, interfaceSet)
	return nil, nil
}
