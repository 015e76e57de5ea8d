package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// CreateBookUseCase 创建图书用例
// 应用层负责用例编排:输入转换 → 领域服务 → 输出DTO
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// Execute 执行创建
// 业务规则校验(书名、作者非空等)由领域服务负责
func (uc *CreateBookUseCase) Execute(ctx context.Context, req BookFieldsRequest) (dto *BookDTO, err error) {
	defer func() { record(opCreate, err) }()

	fields, err := req.toFields()
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.CreateBook(ctx, fields)
	if err != nil {
		return nil, err
	}

	return toDTO(b), nil
}
