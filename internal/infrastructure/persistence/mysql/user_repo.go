package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookbuddy/server/internal/domain/user"
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// userRepository 用户仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如邮箱重复），转换为业务错误
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
// 学习要点：
// 1. 用户名/邮箱唯一性由数据库UNIQUE索引保证（而非应用层SELECT再INSERT）
// 2. 捕获MySQL的Duplicate Entry错误，按冲突索引转换为对应的业务错误
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	// 1. 领域实体 → GORM模型
	model := &UserModel{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// MySQL错误码1062: Duplicate entry
		// 错误信息携带冲突的索引名,据此区分用户名/邮箱冲突
		if isDuplicateOnKey(err, "email") {
			return apperrors.ErrEmailDuplicate
		}
		if isDuplicateOnKey(err, "username") {
			return apperrors.ErrUsernameDuplicate
		}
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	// 3. 回填自增ID（GORM自动填充）
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// FindByUsername 根据用户名查找用户
// 学习要点：用户名字段有UNIQUE索引，查询效率高
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Where("username = ?", username).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// FindByEmail 根据邮箱查找用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// List 查询全部用户
func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询用户列表失败")
	}

	users := make([]*user.User, 0, len(models))
	for i := range models {
		users = append(users, toUserEntity(&models[i]))
	}
	return users, nil
}

// Update 更新用户信息
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	model := &UserModel{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}

	// 使用Save更新所有字段
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateOnKey(err, "email") {
			return apperrors.ErrEmailDuplicate
		}
		if isDuplicateOnKey(err, "username") {
			return apperrors.ErrUsernameDuplicate
		}
		return apperrors.Wrap(err, "更新用户失败")
	}

	u.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除用户（软删除）
// 学习要点：
// 1. GORM的软删除：DELETE操作会自动变成UPDATE deleted_at
// 2. 后续查询会自动过滤deleted_at不为NULL的记录
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&UserModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除用户失败")
	}

	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// toUserEntity GORM模型 → 领域实体
// 说明：这是Repository的重要职责之一，隔离infrastructure层与domain层
func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Username:  model.Username,
		Email:     model.Email,
		Password:  model.Password,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
