package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版仓储，用于领域服务单元测试
type fakeRepository struct {
	nextID  uint
	reviews map[uint]*Review
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, reviews: make(map[uint]*Review)}
}

func (f *fakeRepository) Create(_ context.Context, r *Review) error {
	r.ID = f.nextID
	f.nextID++
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uint) (*Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	return r, nil
}

func (f *fakeRepository) ListByBookID(_ context.Context, bookID uint) ([]*Review, error) {
	var result []*Review
	for _, r := range f.reviews {
		if r.BookID == bookID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	delete(f.reviews, id)
	return nil
}

// TestService_CreateReview 测试发表书评
func TestService_CreateReview(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	t.Run("正常发表", func(t *testing.T) {
		r, err := svc.CreateReview(ctx, 1, 10, 4, "值得一读")
		require.NoError(t, err)
		assert.NotZero(t, r.ID)
		assert.Equal(t, 4, r.Rating)
	})

	t.Run("越界评分被截断而不是报错", func(t *testing.T) {
		r, err := svc.CreateReview(ctx, 1, 10, 99, "")
		require.NoError(t, err)
		assert.Equal(t, MaxRating, r.Rating)
	})

	t.Run("同一用户可对同一本书发表多条", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, 2, 20, 3, "第一条")
		require.NoError(t, err)
		_, err = svc.CreateReview(ctx, 2, 20, 5, "第二条")
		require.NoError(t, err)

		reviews, err := svc.ListByBook(ctx, 20)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})
}

// TestService_AverageRatingByBook 测试平均评分查询
func TestService_AverageRatingByBook(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	t.Run("无书评返回0", func(t *testing.T) {
		avg, err := svc.AverageRatingByBook(ctx, 999)
		require.NoError(t, err)
		assert.Equal(t, 0.0, avg)
	})

	t.Run("多条书评取平均", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, 1, 10, 5, "")
		require.NoError(t, err)
		_, err = svc.CreateReview(ctx, 2, 10, 3, "")
		require.NoError(t, err)

		avg, err := svc.AverageRatingByBook(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 4.0, avg)
	})
}

// TestService_Delete 测试删除书评
func TestService_Delete(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	r, err := svc.CreateReview(ctx, 1, 10, 4, "")
	require.NoError(t, err)

	t.Run("删除存在的书评", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, r.ID))
		_, err := svc.GetByID(ctx, r.ID)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	t.Run("删除不存在的书评返回404", func(t *testing.T) {
		err := svc.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}
