package user

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, firstName, lastName, username, email, password string) (*User, error)

	// Login 用户登录
	// usernameOrEmail先按用户名查找，找不到再按邮箱查找
	Login(ctx context.Context, usernameOrEmail, password string) (*User, error)

	// GetByID 根据ID获取用户
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// List 查询全部用户
	List(ctx context.Context) ([]*User, error)

	// UpdateProfile 部分更新用户信息（空字段不覆盖）
	UpdateProfile(ctx context.Context, id uint, firstName, lastName, username, email string) (*User, error)

	// Delete 删除用户
	Delete(ctx context.Context, id uint) error

	// ValidatePassword 验证密码
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：
// 1. 邮箱格式校验
// 2. 密码强度校验（至少8位，包含大小写字母和数字）
// 3. 密码bcrypt加密（cost=12）
// 4. 邮箱/用户名唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, firstName, lastName, username, email, password string) (*User, error) {
	// 1. 邮箱格式校验
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 2. 用户名校验
	if len(username) < 3 || len(username) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为3-50个字符")
	}

	// 3. 密码强度校验
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// 4. 密码加密
	// bcrypt自动加盐，cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	// 5. 创建用户实体并持久化
	u := NewUser(firstName, lastName, username, email, string(hashedPassword))
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return u, nil
}

// Login 用户登录
// 业务规则：
// 1. 标识符先按用户名匹配，未命中再按邮箱匹配
// 2. 密码必须正确
func (s *service) Login(ctx context.Context, usernameOrEmail, password string) (*User, error) {
	// 1. 按用户名查找，未命中再按邮箱查找
	u, err := s.repo.FindByUsername(ctx, usernameOrEmail)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		u, err = s.repo.FindByEmail(ctx, usernameOrEmail)
		if err != nil {
			return nil, err
		}
	}

	// 2. 验证密码
	if err := s.ValidatePassword(u.Password, password); err != nil {
		return nil, err // 返回ErrInvalidPassword
	}

	return u, nil
}

// GetByID 根据ID获取用户
func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByUsername 根据用户名获取用户
func (s *service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// List 查询全部用户
func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile 部分更新用户信息
// 业务规则：
// 1. 空字段不覆盖原值
// 2. 新邮箱需通过格式校验
// 3. 用户名/邮箱唯一性由数据库UNIQUE索引保证（Repository转换冲突错误）
func (s *service) UpdateProfile(ctx context.Context, id uint, firstName, lastName, username, email string) (*User, error) {
	// 1. 查询用户
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 新邮箱格式校验
	if email != "" && !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 3. 应用部分更新并持久化
	u.UpdateProfile(firstName, lastName, username, email)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Delete 删除用户
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ValidatePassword 验证密码
// 说明：登录时使用，验证明文密码与哈希值是否匹配
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// =========================================
// 辅助函数：业务规则校验
// =========================================

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验
// 规则：至少8位，必须包含大写字母、小写字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return apperrors.ErrWeakPassword
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasDigit {
		return apperrors.ErrWeakPassword
	}

	return nil
}
