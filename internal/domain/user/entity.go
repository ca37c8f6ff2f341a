package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，包含用户的核心属性
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	FirstName string
	LastName  string
	Username  string // 登录用户名（全局唯一）
	Email     string // 邮箱（全局唯一）
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(firstName, lastName, username, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProfile 部分更新个人信息（领域行为）
// 业务规则：空字符串表示"不修改该字段"，只覆盖非空值
func (u *User) UpdateProfile(firstName, lastName, username, email string) {
	if firstName != "" {
		u.FirstName = firstName
	}
	if lastName != "" {
		u.LastName = lastName
	}
	if username != "" {
		u.Username = username
	}
	if email != "" {
		u.Email = email
	}
	u.UpdatedAt = time.Now()
}

// ChangePassword 更新密码哈希（领域行为）
// hashedPassword必须是bcrypt加密后的密码
func (u *User) ChangePassword(hashedPassword string) {
	u.Password = hashedPassword
	u.UpdatedAt = time.Now()
}
