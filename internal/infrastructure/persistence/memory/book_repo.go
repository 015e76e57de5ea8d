// Package memory 内存版图书仓储,用于HTTP层测试和无数据库运行
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 读写锁保护的map
// 存取都使用副本,调用方修改返回值不会影响已存储的数据
type bookRepository struct {
	mu     sync.RWMutex
	books  map[uint]*book.Book
	nextID uint
	now    func() time.Time
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{
		books: make(map[uint]*book.Book),
		now:   time.Now,
	}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// ID单调递增,删除后不复用
	r.nextID++
	now := r.now()

	b.ID = r.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	r.books[b.ID] = b.Clone()

	return nil
}

func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b.Clone())
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b.Clone(), nil
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.books[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}

	updated := b.Clone()
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = r.now()
	r.books[b.ID] = updated

	b.CreatedAt = updated.CreatedAt
	b.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

// checkContext 请求已取消或超时时不再访问数据
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, "请求已取消")
	}
	return nil
}
