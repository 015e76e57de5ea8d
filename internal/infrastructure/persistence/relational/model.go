package relational

import (
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. 表结构由migrations目录下的goose脚本维护,tag与脚本保持一致
// 4. 软删除保证已删除的ID不会被复用
type BookModel struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"size:200;not null;comment:书名"`
	Author        string         `gorm:"size:100;not null;comment:作者"`
	Publisher     string         `gorm:"size:100;not null;default:'';comment:出版社"`
	Price         int64          `gorm:"not null;default:0;comment:价格(分)"`
	PublishedDate *time.Time     `gorm:"type:date;comment:出版日期"`
	CreatedAt     time.Time      `gorm:"comment:创建时间"`
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	m := &BookModel{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Price:     b.Price,
	}
	m.setDate(b.PublishedDate)
	return m
}

// setDate DATE列按驱动所在时区解释,这里转成本地零点避免跨时区后日期偏移一天
func (m *BookModel) setDate(d *time.Time) {
	if d == nil {
		m.PublishedDate = nil
		return
	}
	y, mo, day := d.Date()
	local := time.Date(y, mo, day, 0, 0, 0, 0, time.Local)
	m.PublishedDate = &local
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	b := &book.Book{
		ID:        m.ID,
		Title:     m.Title,
		Author:    m.Author,
		Publisher: m.Publisher,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PublishedDate != nil {
		d := book.TruncateDate(*m.PublishedDate)
		b.PublishedDate = &d
	}
	return b
}
