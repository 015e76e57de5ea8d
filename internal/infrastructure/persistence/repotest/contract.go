// Package repotest book.Repository的通用行为测试
//
// 每种仓储实现在自己的测试中调用Run,保证内存实现与数据库实现行为一致:
//
//	func TestBookRepository(t *testing.T) {
//	    repotest.Run(t, func(t *testing.T) book.Repository {
//	        return memory.NewBookRepository()
//	    })
//	}
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// Factory 为每个子测试返回一个空仓储
type Factory func(t *testing.T) book.Repository

// Run 执行全部契约测试
func Run(t *testing.T, newRepo Factory) {
	t.Helper()

	cases := []struct {
		name string
		fn   func(t *testing.T, repo book.Repository)
	}{
		{"创建分配不同的非零ID", testCreateAssignsIDs},
		{"创建后可按ID查询", testCreateThenFind},
		{"不存在的ID返回NotFound", testUnknownID},
		{"更新后查询到新字段", testUpdateThenFind},
		{"内容不变的更新也成功", testNoopUpdate},
		{"删除后查询返回NotFound", testDeleteThenFind},
		{"删除后ID不复用", testIDNotReused},
		{"空列表返回空切片", testListEmpty},
		{"列表按ID升序返回全部", testListAll},
		{"返回值与存储隔离", testReturnsCopies},
		{"并发创建", testConcurrentCreate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newRepo(t))
		})
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newBook(title, author string) *book.Book {
	return book.NewBook(book.Fields{Title: title, Author: author})
}

// assertFields 比较可变字段,日期只比较年月日
func assertFields(t *testing.T, want, got *book.Book) {
	t.Helper()
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Author, got.Author)
	assert.Equal(t, want.Publisher, got.Publisher)
	assert.Equal(t, want.Price, got.Price)
	if want.PublishedDate == nil {
		assert.Nil(t, got.PublishedDate)
		return
	}
	require.NotNil(t, got.PublishedDate)
	assert.Equal(t, want.PublishedDate.Format("2006-01-02"), got.PublishedDate.Format("2006-01-02"))
}

func testCreateAssignsIDs(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	a, b := newBook("Dune", "Frank Herbert"), newBook("Emma", "Jane Austen")

	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.NotZero(t, a.ID)
	assert.NotZero(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func testCreateThenFind(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	created := book.NewBook(book.Fields{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Publisher:     "Chilton Books",
		Price:         1999,
		PublishedDate: date(1965, time.August, 1),
	})
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assertFields(t, created, got)
}

func testUnknownID(t *testing.T, repo book.Repository) {
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 424242)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	missing := newBook("Ghost", "Nobody")
	missing.ID = 424242
	assert.ErrorIs(t, repo.Update(ctx, missing), book.ErrBookNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 424242), book.ErrBookNotFound)

	// 超出有符号BIGINT范围的ID
	huge := ^uint(0)
	_, err = repo.FindByID(ctx, huge)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	missing.ID = huge
	assert.ErrorIs(t, repo.Update(ctx, missing), book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, huge), book.ErrBookNotFound)
}

func testUpdateThenFind(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	b := book.NewBook(book.Fields{Title: "Dune", Author: "Herbert", Price: 100, PublishedDate: date(1965, time.August, 1)})
	require.NoError(t, repo.Create(ctx, b))

	b.SetFields(book.Fields{Title: "Dune Messiah", Author: "Frank Herbert", Publisher: "Putnam"})
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assertFields(t, b, got)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func testNoopUpdate(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	b := newBook("Dune", "Frank Herbert")
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.Update(ctx, b))
	require.NoError(t, repo.Update(ctx, b))
}

func testDeleteThenFind(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	b := newBook("Dune", "Frank Herbert")
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Update(ctx, b), book.ErrBookNotFound)
}

func testIDNotReused(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	first := newBook("A", "A")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newBook("B", "B")
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)
}

func testListEmpty(t *testing.T, repo book.Repository) {
	books, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func testListAll(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	const n = 5

	created := make([]*book.Book, 0, n)
	for i := 0; i < n; i++ {
		b := newBook(fmt.Sprintf("Book %d", i), "Author")
		require.NoError(t, repo.Create(ctx, b))
		created = append(created, b)
	}

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, n)

	for i := 1; i < len(books); i++ {
		assert.Less(t, books[i-1].ID, books[i].ID)
	}
	for _, c := range created {
		got, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assertFields(t, c, got)
	}
}

func testReturnsCopies(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	b := newBook("Dune", "Frank Herbert")
	require.NoError(t, repo.Create(ctx, b))

	b.Title = "changed after create"
	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	got.Title = "changed after find"
	again, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", again.Title)
}

func testConcurrentCreate(t *testing.T, repo book.Repository) {
	ctx := context.Background()
	const n = 20

	var wg sync.WaitGroup
	ids := make(chan uint, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := newBook(fmt.Sprintf("Concurrent %d", i), "Author")
			if err := repo.Create(ctx, b); err != nil {
				errs <- err
				return
			}
			ids <- b.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	seen := make(map[uint]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "重复ID: %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
