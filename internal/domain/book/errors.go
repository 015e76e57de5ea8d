package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInvalidTitle 书名为空或过长
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空且不超过200个字符")

	// ErrInvalidAuthor 作者为空或过长
	ErrInvalidAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空且不超过100个字符")

	// ErrInvalidPublisher 出版社过长
	ErrInvalidPublisher = apperrors.New(apperrors.ErrCodeInvalidParams, "出版社不超过100个字符")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidPublishedDate 出版日期格式不正确
	ErrInvalidPublishedDate = apperrors.New(apperrors.ErrCodeInvalidParams, "出版日期格式应为YYYY-MM-DD")
)
