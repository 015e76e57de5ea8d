package relational

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

func TestModelConversion(t *testing.T) {
	d := time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC)
	b := &book.Book{ID: 9, Title: "Dune", Author: "Frank Herbert", Publisher: "Chilton", Price: 1999, PublishedDate: &d}

	m := toBookModel(b)
	require.NotNil(t, m.PublishedDate)
	assert.Equal(t, time.Local, m.PublishedDate.Location())

	back := toBookEntity(m)
	assert.Equal(t, b.ID, back.ID)
	assert.Equal(t, b.Title, back.Title)
	assert.Equal(t, b.Price, back.Price)
	assert.Equal(t, "1965-08-01", back.PublishedDate.Format("2006-01-02"))

	b.PublishedDate = nil
	assert.Nil(t, toBookEntity(toBookModel(b)).PublishedDate)
}

func TestNewDialector(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres} {
		d, err := newDialector(config.DatabaseConfig{Driver: driver, URL: "dsn"})
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}

	_, err := newDialector(config.DatabaseConfig{Driver: "sqlite"})
	assert.Error(t, err)
}

func TestStorableID(t *testing.T) {
	assert.False(t, storableID(0))
	assert.True(t, storableID(1))
	assert.True(t, storableID(uint(math.MaxInt64)))
	assert.False(t, storableID(^uint(0)))
}

// 超出范围的ID在访问数据库之前就返回不存在,db为nil也不会被使用
func TestOutOfRangeIDIsNotFound(t *testing.T) {
	repo := NewBookRepository(nil)
	ctx := context.Background()
	huge := ^uint(0)

	_, err := repo.FindByID(ctx, huge)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &book.Book{ID: huge, Title: "Dune", Author: "Frank Herbert"}), book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, huge), book.ErrBookNotFound)
}
