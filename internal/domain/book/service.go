package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const tracerName = "bookshelf/domain/book"

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务负责字段规则校验,校验失败时不访问Repository
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	CreateBook(ctx context.Context, f Fields) (*Book, error)

	// ListBooks 查询全部图书(按ID升序)
	ListBooks(ctx context.Context) ([]*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ReplaceBook 整体替换图书字段(PUT)
	ReplaceBook(ctx context.Context, id uint, f Fields) (*Book, error)

	// PatchBook 部分更新图书字段(PATCH)
	PatchBook(ctx context.Context, id uint, p Patch) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, f Fields) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.CreateBook")
	defer func() { endSpan(span, err) }()

	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	b = NewBook(f)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("book.id", int64(b.ID)))

	return b, nil
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) (books []*Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.ListBooks")
	defer func() { endSpan(span, err) }()

	books, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("book.count", len(books)))

	return books, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.GetBook")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	return s.repo.FindByID(ctx, id)
}

// ReplaceBook 整体替换
// 未提供的可选字段被清空(出版社为空串、价格为0、出版日期为nil)
func (s *service) ReplaceBook(ctx context.Context, id uint, f Fields) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.ReplaceBook")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	b = NewBook(f)
	b.ID = id
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// PatchBook 部分更新
// 1. 查询现有图书
// 2. 合并Patch并校验合并后的结果
// 3. 持久化
func (s *service) PatchBook(ctx context.Context, id uint, p Patch) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.PatchBook")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	b, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return b, nil
	}

	f := p.Apply(b.Fields()).Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	b.SetFields(f)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.DeleteBook")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	return s.repo.Delete(ctx, id)
}

// endSpan 结束Span,出错时记录错误
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
