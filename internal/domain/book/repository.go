package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. HTTP层和应用层只依赖此接口,测试时可替换为内存实现
// 3. 实现必须可被多个请求并发调用
//
// 错误约定:
// - 记录不存在返回ErrBookNotFound
// - 其他存储故障返回apperrors.Wrap包装后的错误(内部错误码)
type Repository interface {
	// Create 创建图书,回填ID、CreatedAt、UpdatedAt
	Create(ctx context.Context, book *Book) error

	// List 返回全部图书,按ID升序;没有数据时返回空切片(非nil)
	List(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 用book的可变字段替换ID对应记录,回填CreatedAt、UpdatedAt
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error
}
