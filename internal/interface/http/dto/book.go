package dto

import (
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
)

// BookRequest HTTP创建/整体替换请求(POST、PUT)
// validator tag说明:
// - required,notblank: 必填且不能全是空白(notblank在pkg/validator中注册)
// - max: 字符数上限
// - date: YYYY-MM-DD格式(pkg/validator中注册)
type BookRequest struct {
	Title         string  `json:"title" binding:"required,notblank,max=200" example:"Dune"`
	Author        string  `json:"author" binding:"required,notblank,max=100" example:"Frank Herbert"`
	Publisher     string  `json:"publisher" binding:"max=100" example:"Chilton Books"`
	Price         int64   `json:"price" binding:"min=0" example:"1999"` // 价格(分),19.99元
	PublishedDate *string `json:"published_date" binding:"omitempty,date" example:"1965-08-01"`
}

// ToFields 转换为应用层输入
func (r BookRequest) ToFields() appbook.BookFieldsRequest {
	return appbook.BookFieldsRequest{
		Title:         r.Title,
		Author:        r.Author,
		Publisher:     r.Publisher,
		Price:         r.Price,
		PublishedDate: r.PublishedDate,
	}
}

// PatchBookRequest HTTP部分更新请求(PATCH),未出现的字段保持不变
type PatchBookRequest struct {
	Title         *string `json:"title" binding:"omitempty,notblank,max=200" example:"Dune Messiah"`
	Author        *string `json:"author" binding:"omitempty,notblank,max=100" example:"Frank Herbert"`
	Publisher     *string `json:"publisher" binding:"omitempty,max=100" example:"Putnam"`
	Price         *int64  `json:"price" binding:"omitempty,min=0" example:"2599"`
	PublishedDate *string `json:"published_date" binding:"omitempty,date" example:"1969-10-15"`
}

// ToPatch 转换为应用层输入
func (r PatchBookRequest) ToPatch() appbook.PatchBookRequest {
	return appbook.PatchBookRequest{
		Title:         r.Title,
		Author:        r.Author,
		Publisher:     r.Publisher,
		Price:         r.Price,
		PublishedDate: r.PublishedDate,
	}
}

// BookResponse HTTP图书响应
type BookResponse = appbook.BookDTO

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database,omitempty" example:"up"`
}
