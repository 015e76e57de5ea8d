package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// mockRepository Repository的testify mock
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) List(ctx context.Context) ([]*Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]*Book)
	return books, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestService_CreateBook(t *testing.T) {
	t.Run("成功创建并去除空白", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(b *Book) bool {
			return b.Title == "Dune" && b.Author == "Frank Herbert"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*Book).ID = 1
		}).Return(nil)

		svc := NewService(repo)
		b, err := svc.CreateBook(context.Background(), Fields{Title: "  Dune ", Author: "Frank Herbert"})

		require.NoError(t, err)
		assert.Equal(t, uint(1), b.ID)
		assert.Equal(t, "Dune", b.Title)
		repo.AssertExpectations(t)
	})

	invalid := []struct {
		name   string
		fields Fields
		want   error
	}{
		{"书名为空", Fields{Title: "", Author: "A"}, ErrInvalidTitle},
		{"书名全空白", Fields{Title: "   ", Author: "A"}, ErrInvalidTitle},
		{"作者为空", Fields{Title: "T", Author: ""}, ErrInvalidAuthor},
		{"价格为负", Fields{Title: "T", Author: "A", Price: -1}, ErrInvalidPrice},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			svc := NewService(repo)

			_, err := svc.CreateBook(context.Background(), tt.fields)

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, apperrors.IsValidation(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("存储错误透传", func(t *testing.T) {
		repo := new(mockRepository)
		storageErr := apperrors.Wrap(errors.New("connection refused"), "创建图书失败")
		repo.On("Create", mock.Anything, mock.Anything).Return(storageErr)

		_, err := NewService(repo).CreateBook(context.Background(), Fields{Title: "T", Author: "A"})
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestService_ReplaceBook(t *testing.T) {
	t.Run("整体替换", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(b *Book) bool {
			return b.ID == 7 && b.Title == "New" && b.Publisher == "" && b.Price == 0
		})).Return(nil)

		b, err := NewService(repo).ReplaceBook(context.Background(), 7, Fields{Title: "New", Author: "A"})
		require.NoError(t, err)
		assert.Equal(t, uint(7), b.ID)
		repo.AssertExpectations(t)
	})

	t.Run("不存在", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Update", mock.Anything, mock.Anything).Return(ErrBookNotFound)

		_, err := NewService(repo).ReplaceBook(context.Background(), 99, Fields{Title: "T", Author: "A"})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("校验失败不访问仓储", func(t *testing.T) {
		repo := new(mockRepository)
		_, err := NewService(repo).ReplaceBook(context.Background(), 1, Fields{Title: "T"})
		assert.ErrorIs(t, err, ErrInvalidAuthor)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestService_PatchBook(t *testing.T) {
	existing := func() *Book {
		return &Book{ID: 3, Title: "Dune", Author: "Frank Herbert", Publisher: "Chilton", Price: 999}
	}

	t.Run("只修改提供的字段", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(b *Book) bool {
			return b.Title == "Dune Messiah" && b.Author == "Frank Herbert" && b.Publisher == "Chilton" && b.Price == 999
		})).Return(nil)

		b, err := NewService(repo).PatchBook(context.Background(), 3, Patch{Title: strPtr("Dune Messiah")})
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", b.Title)
		repo.AssertExpectations(t)
	})

	t.Run("空Patch不写入", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(existing(), nil)

		b, err := NewService(repo).PatchBook(context.Background(), 3, Patch{})
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("合并后校验失败", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", mock.Anything, uint(3)).Return(existing(), nil)

		_, err := NewService(repo).PatchBook(context.Background(), 3, Patch{Author: strPtr(" ")})
		assert.ErrorIs(t, err, ErrInvalidAuthor)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("不存在", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", mock.Anything, uint(404)).Return(nil, ErrBookNotFound)

		_, err := NewService(repo).PatchBook(context.Background(), 404, Patch{Title: strPtr("X")})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_GetListDelete(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&Book{ID: 1, Title: "T", Author: "A"}, nil)
	repo.On("List", mock.Anything).Return([]*Book{}, nil)
	repo.On("Delete", mock.Anything, uint(2)).Return(ErrBookNotFound)

	svc := NewService(repo)

	b, err := svc.GetBook(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "T", b.Title)

	books, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	assert.ErrorIs(t, svc.DeleteBook(context.Background(), 2), ErrBookNotFound)
}

func TestErrBookNotFound(t *testing.T) {
	assert.Same(t, apperrors.ErrBookNotFound, ErrBookNotFound)
	assert.True(t, apperrors.IsNotFound(ErrBookNotFound))
}

func TestFields(t *testing.T) {
	t.Run("Normalize截断日期", func(t *testing.T) {
		d := time.Date(1965, 8, 1, 15, 30, 0, 0, time.FixedZone("X", 3600))
		f := Fields{Title: " T ", Author: " A ", PublishedDate: &d}.Normalize()

		assert.Equal(t, "T", f.Title)
		assert.Equal(t, "A", f.Author)
		assert.Equal(t, time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC), *f.PublishedDate)
	})

	t.Run("长度按字符计算", func(t *testing.T) {
		title := ""
		for i := 0; i < MaxTitleLen; i++ {
			title += "书"
		}
		assert.NoError(t, Fields{Title: title, Author: "A"}.Validate())
		assert.ErrorIs(t, Fields{Title: title + "书", Author: "A"}.Validate(), ErrInvalidTitle)
	})

	t.Run("Clone不共享日期", func(t *testing.T) {
		d := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		b := &Book{Title: "T", PublishedDate: &d}
		c := b.Clone()
		*c.PublishedDate = c.PublishedDate.AddDate(1, 0, 0)
		assert.Equal(t, 2000, b.PublishedDate.Year())
	})
}
