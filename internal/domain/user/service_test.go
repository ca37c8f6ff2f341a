package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// fakeRepository 内存版仓储，用于领域服务单元测试
type fakeRepository struct {
	nextID uint
	users  map[uint]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, users: make(map[uint]*User)}
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
		if existing.Username == u.Username {
			return apperrors.ErrUsernameDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeRepository) List(_ context.Context) ([]*User, error) {
	var result []*User
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeRepository) Update(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

// TestService_Register 测试用户注册
func TestService_Register(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		u, err := svc.Register(ctx, "三", "张", "zhangsan", "zhangsan@example.com", "Test1234")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		// 密码必须已加密
		assert.NotEqual(t, "Test1234", u.Password)
		assert.NoError(t, svc.ValidatePassword(u.Password, "Test1234"))
	})

	t.Run("邮箱格式非法", func(t *testing.T) {
		_, err := svc.Register(ctx, "三", "张", "user2", "not-an-email", "Test1234")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("弱密码被拒绝", func(t *testing.T) {
		// 太短 / 缺大写 / 缺小写 / 缺数字
		for _, password := range []string{"Ab1", "test1234", "TEST1234", "TestTest"} {
			_, err := svc.Register(ctx, "三", "张", "user3", "user3@example.com", password)
			assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "密码%q应该被拒绝", password)
		}
	})

	t.Run("重复邮箱返回409", func(t *testing.T) {
		_, err := svc.Register(ctx, "四", "李", "lisi", "zhangsan@example.com", "Test1234")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("重复用户名返回409", func(t *testing.T) {
		_, err := svc.Register(ctx, "四", "李", "zhangsan", "lisi@example.com", "Test1234")
		assert.ErrorIs(t, err, apperrors.ErrUsernameDuplicate)
	})
}

// TestService_Login 测试用户登录
func TestService_Login(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "三", "张", "zhangsan", "zhangsan@example.com", "Test1234")
	require.NoError(t, err)

	t.Run("用户名登录", func(t *testing.T) {
		u, err := svc.Login(ctx, "zhangsan", "Test1234")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("邮箱登录（用户名未命中时回退）", func(t *testing.T) {
		u, err := svc.Login(ctx, "zhangsan@example.com", "Test1234")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "zhangsan", "Wrong1234")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "Test1234")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

// TestService_UpdateProfile 测试部分更新
func TestService_UpdateProfile(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "三", "张", "zhangsan", "zhangsan@example.com", "Test1234")
	require.NoError(t, err)

	t.Run("空字段不覆盖原值", func(t *testing.T) {
		u, err := svc.UpdateProfile(ctx, registered.ID, "新名", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "新名", u.FirstName)
		assert.Equal(t, "张", u.LastName)
		assert.Equal(t, "zhangsan", u.Username)
		assert.Equal(t, "zhangsan@example.com", u.Email)
	})

	t.Run("新邮箱需通过格式校验", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, registered.ID, "", "", "", "bad-email")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, 999, "名", "", "", "")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
