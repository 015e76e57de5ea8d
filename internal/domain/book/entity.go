package book

import (
	"strings"
	"time"
	"unicode/utf8"
)

// 字段长度限制（按字符数计算，与数据库列宽一致）
const (
	MaxTitleLen     = 200
	MaxAuthorLen    = 100
	MaxPublisherLen = 100
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID由存储层分配,创建后不可变,删除后不会复用
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. PublishedDate只保留日期部分,nil表示未知
type Book struct {
	ID            uint
	Title         string     // 书名
	Author        string     // 作者
	Publisher     string     // 出版社
	Price         int64      // 价格(单位:分,1元=100分)
	PublishedDate *time.Time // 出版日期
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Fields 图书的可变字段(除ID和时间戳以外的全部字段)
// 创建和整体替换(PUT)都使用Fields
type Fields struct {
	Title         string
	Author        string
	Publisher     string
	Price         int64
	PublishedDate *time.Time
}

// Patch 部分更新(PATCH),nil表示不修改该字段
type Patch struct {
	Title         *string
	Author        *string
	Publisher     *string
	Price         *int64
	PublishedDate *time.Time
}

// NewBook 创建新图书(工厂方法),ID和时间戳由Repository回填
func NewBook(f Fields) *Book {
	b := &Book{}
	b.SetFields(f)
	return b
}

// Fields 返回当前可变字段
func (b *Book) Fields() Fields {
	return Fields{
		Title:         b.Title,
		Author:        b.Author,
		Publisher:     b.Publisher,
		Price:         b.Price,
		PublishedDate: b.PublishedDate,
	}
}

// SetFields 整体替换可变字段
func (b *Book) SetFields(f Fields) {
	b.Title = f.Title
	b.Author = f.Author
	b.Publisher = f.Publisher
	b.Price = f.Price
	b.PublishedDate = f.PublishedDate
}

// Clone 深拷贝(PublishedDate是指针)
func (b *Book) Clone() *Book {
	c := *b
	if b.PublishedDate != nil {
		d := *b.PublishedDate
		c.PublishedDate = &d
	}
	return &c
}

// Normalize 去除文本字段首尾空白,日期截断到天
func (f Fields) Normalize() Fields {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.Publisher = strings.TrimSpace(f.Publisher)
	if f.PublishedDate != nil {
		d := TruncateDate(*f.PublishedDate)
		f.PublishedDate = &d
	}
	return f
}

// Validate 业务规则校验(调用前应先Normalize)
// 规则:
// - 书名、作者不能为空
// - 书名<=200字符,作者、出版社<=100字符
// - 价格>=0
func (f Fields) Validate() error {
	if f.Title == "" || utf8.RuneCountInString(f.Title) > MaxTitleLen {
		return ErrInvalidTitle
	}
	if f.Author == "" || utf8.RuneCountInString(f.Author) > MaxAuthorLen {
		return ErrInvalidAuthor
	}
	if utf8.RuneCountInString(f.Publisher) > MaxPublisherLen {
		return ErrInvalidPublisher
	}
	if f.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Apply 将Patch合并到f上,返回新的Fields
func (p Patch) Apply(f Fields) Fields {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Author != nil {
		f.Author = *p.Author
	}
	if p.Publisher != nil {
		f.Publisher = *p.Publisher
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	if p.PublishedDate != nil {
		d := *p.PublishedDate
		f.PublishedDate = &d
	}
	return f
}

// IsEmpty 是否没有任何字段需要修改
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Publisher == nil &&
		p.Price == nil && p.PublishedDate == nil
}

// TruncateDate 去掉时分秒,统一为UTC零点
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
