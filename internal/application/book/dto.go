package book

import (
	"errors"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// DateLayout 出版日期格式
const DateLayout = "2006-01-02"

// BookDTO 图书响应DTO
// 设计说明:
// 1. 应用层输出与领域实体解耦,HTTP层直接序列化该结构
// 2. published_date为null表示未知
type BookDTO struct {
	ID            uint      `json:"id" example:"1"`
	Title         string    `json:"title" example:"Dune"`
	Author        string    `json:"author" example:"Frank Herbert"`
	Publisher     string    `json:"publisher" example:"Chilton Books"`
	Price         int64     `json:"price" example:"1999"` // 价格(分)
	PublishedDate *string   `json:"published_date" example:"1965-08-01"`
	CreatedAt     time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

// toDTO 领域实体 → DTO
func toDTO(b *book.Book) *BookDTO {
	dto := &BookDTO{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.PublishedDate != nil {
		s := b.PublishedDate.Format(DateLayout)
		dto.PublishedDate = &s
	}
	return dto
}

// parseDate 解析YYYY-MM-DD,nil或空串表示未提供
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, apperrors.WithCause(book.ErrInvalidPublishedDate, err)
	}
	return &t, nil
}

// BookFieldsRequest 创建和整体替换共用的输入
type BookFieldsRequest struct {
	Title         string
	Author        string
	Publisher     string
	Price         int64
	PublishedDate *string // YYYY-MM-DD
}

// toFields 转换为领域Fields,日期格式错误时返回ErrInvalidPublishedDate
func (r BookFieldsRequest) toFields() (book.Fields, error) {
	date, err := parseDate(r.PublishedDate)
	if err != nil {
		return book.Fields{}, err
	}
	return book.Fields{
		Title:         r.Title,
		Author:        r.Author,
		Publisher:     r.Publisher,
		Price:         r.Price,
		PublishedDate: date,
	}, nil
}

// 业务操作名,用作book_operations_total的operation标签
const (
	opCreate = "create"
	opList   = "list"
	opGet    = "get"
	opUpdate = "update"
	opDelete = "delete"
)

// record 按错误类型记录操作结果
func record(operation string, err error) {
	metrics.RecordBookOperation(operation, resultOf(err))
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, book.ErrBookNotFound):
		return metrics.ResultNotFound
	case apperrors.IsValidation(err):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
