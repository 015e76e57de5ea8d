package relational

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现(GORM,MySQL/PostgreSQL通用)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. gorm.ErrRecordNotFound转换为book.ErrBookNotFound,其他错误统一包装为数据库错误
type bookRepository struct {
	db *gorm.DB
	tx *TxManager
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db, tx: NewTxManager(db)}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = 0 // ID由数据库分配

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// List 查询全部图书(按ID升序)
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.getDB(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}

	return books, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	if !storableID(id) {
		return nil, book.ErrBookNotFound
	}

	var model BookModel
	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书
// 在事务中先SELECT FOR UPDATE锁定行再Save:
// MySQL对内容未变化的UPDATE返回RowsAffected=0,不能据此判断记录不存在
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	if !storableID(b.ID) {
		return book.ErrBookNotFound
	}

	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := r.getDB(ctx)

		var model BookModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, b.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "锁定图书失败")
		}

		updated := toBookModel(b)
		model.Title = updated.Title
		model.Author = updated.Author
		model.Publisher = updated.Publisher
		model.Price = updated.Price
		model.PublishedDate = updated.PublishedDate

		if err := db.Save(&model).Error; err != nil {
			return apperrors.Wrap(err, "更新图书失败")
		}

		b.CreatedAt = model.CreatedAt
		b.UpdatedAt = model.UpdatedAt
		return nil
	})

	// COMMIT失败时返回的是驱动原始错误
	if err != nil && !apperrors.IsAppError(err) {
		return apperrors.Wrap(err, "更新图书失败")
	}
	return err
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	if !storableID(id) {
		return book.ErrBookNotFound
	}

	result := r.getDB(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// storableID 主键列是有符号BIGINT,超出范围的ID不可能存在
// 提前返回不存在,否则pgx编码参数时报错
func storableID(id uint) bool {
	return id != 0 && uint64(id) <= math.MaxInt64
}
