package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 删除,不存在时返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (err error) {
	defer func() { record(opDelete, err) }()
	return uc.bookService.DeleteBook(ctx, id)
}
