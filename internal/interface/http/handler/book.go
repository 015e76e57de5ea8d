package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
// 只依赖应用层用例,用例背后的Repository可以是数据库实现或内存实现
type BookHandler struct {
	createBook *appbook.CreateBookUseCase
	listBooks  *appbook.ListBooksUseCase
	getBook    *appbook.GetBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	getBook *appbook.GetBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBook: createBook,
		listBooks:  listBooks,
		getBook:    getBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  创建一本新图书,ID由服务端分配
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.createBook.Execute(c.Request.Context(), req.ToFields())
	if err != nil {
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("created book",
		zap.Uint("book_id", result.ID),
		zap.String("title", result.Title),
	)
	response.Created(c, result)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按ID升序返回全部图书,没有数据时返回空数组
// @Tags         图书
// @Produce      json
// @Success      200 {array}  dto.BookResponse
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	list, err := h.listBooks.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("retrieved books", zap.Int("count", len(list)))
	response.OK(c, list)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "ID格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		logNotFound(c, id, err)
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("retrieved book", zap.Uint("book_id", id))
	response.OK(c, result)
}

// ReplaceBook 整体更新图书
// @Summary      整体更新图书
// @Description  替换除ID外的全部字段,未提供的可选字段被清空
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) ReplaceBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.updateBook.Replace(c.Request.Context(), id, req.ToFields())
	if err != nil {
		logNotFound(c, id, err)
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("updated book", zap.Uint("book_id", id))
	response.OK(c, result)
}

// PatchBook 部分更新图书
// @Summary      部分更新图书
// @Description  只修改请求中出现的字段
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "图书ID"
// @Param        request body dto.PatchBookRequest true "需要修改的字段"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) PatchBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.updateBook.Patch(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		logNotFound(c, id, err)
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("updated book", zap.Uint("book_id", id))
	response.OK(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      400 {object} response.ErrorBody "ID格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		logNotFound(c, id, err)
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("deleted book", zap.Uint("book_id", id))
	response.NoContent(c)
}

func logNotFound(c *gin.Context, id uint, err error) {
	if apperrors.IsNotFound(err) {
		logger.WithContext(c.Request.Context()).Info("book not found", zap.Uint("book_id", id))
	}
}
