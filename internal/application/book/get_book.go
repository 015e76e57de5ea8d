package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 根据ID查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (dto *BookDTO, err error) {
	defer func() { record(opGet, err) }()

	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}
