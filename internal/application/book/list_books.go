package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// ListBooksUseCase 图书列表查询用例
// 不分页,按ID升序返回全部图书
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 执行列表查询,没有数据时返回空切片(序列化为[])
func (uc *ListBooksUseCase) Execute(ctx context.Context) (list []*BookDTO, err error) {
	defer func() { record(opList, err) }()

	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	list = make([]*BookDTO, 0, len(books))
	for _, b := range books {
		list = append(list, toDTO(b))
	}
	metrics.SetBooksStored(len(list))

	return list, nil
}
