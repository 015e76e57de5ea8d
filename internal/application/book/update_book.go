package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// UpdateBookUseCase 更新图书用例
// 支持两种方式:
// - Replace(PUT): 整体替换,未提供的可选字段被清空
// - Patch(PATCH): 只修改提供的字段
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// PatchBookRequest 部分更新输入,nil表示不修改
type PatchBookRequest struct {
	Title         *string
	Author        *string
	Publisher     *string
	Price         *int64
	PublishedDate *string // YYYY-MM-DD
}

// Replace 整体替换
func (uc *UpdateBookUseCase) Replace(ctx context.Context, id uint, req BookFieldsRequest) (dto *BookDTO, err error) {
	defer func() { record(opUpdate, err) }()

	fields, err := req.toFields()
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.ReplaceBook(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// Patch 部分更新
func (uc *UpdateBookUseCase) Patch(ctx context.Context, id uint, req PatchBookRequest) (dto *BookDTO, err error) {
	defer func() { record(opUpdate, err) }()

	date, err := parseDate(req.PublishedDate)
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.PatchBook(ctx, id, book.Patch{
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		Price:         req.Price,
		PublishedDate: date,
	})
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}
