package library

import (
	"time"
)

// ShelfStatus 书架状态
// 设计说明：
// 1. 使用string类型（直接作为API与数据库的取值）
// 2. 三种状态：想读 / 在读 / 已读
// 3. 解析失败返回错误而不是panic（见ParseShelfStatus）
type ShelfStatus string

const (
	ShelfWantToRead       ShelfStatus = "WANT_TO_READ"      // 想读
	ShelfCurrentlyReading ShelfStatus = "CURRENTLY_READING" // 在读
	ShelfRead             ShelfStatus = "READ"              // 已读
)

// String 实现Stringer接口
func (s ShelfStatus) String() string {
	return string(s)
}

// IsValid 判断是否为合法状态
func (s ShelfStatus) IsValid() bool {
	switch s {
	case ShelfWantToRead, ShelfCurrentlyReading, ShelfRead:
		return true
	default:
		return false
	}
}

// ParseShelfStatus 解析书架状态
// 空字符串返回默认值WANT_TO_READ；非法取值返回ErrInvalidShelfStatus
func ParseShelfStatus(s string) (ShelfStatus, error) {
	if s == "" {
		return ShelfWantToRead, nil
	}
	status := ShelfStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidShelfStatus
	}
	return status, nil
}

// UserBook 用户书架条目实体（聚合根）
// DDD设计说明：
// 1. UserBook表示"某个用户书架上的某本书"，关联User和目录中的Book
// 2. 不直接持有Book对象，只保存BookID（避免跨聚合引用）
// 3. CompletedAt只在READ状态下有值
type UserBook struct {
	ID          uint
	UserID      uint        // 所属用户ID
	BookID      uint        // 目录图书ID
	Shelf       ShelfStatus // 书架状态
	CompletedAt *time.Time  // 读完时间（仅READ状态）
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUserBook 创建书架条目（工厂方法）
// shelf为空时默认WANT_TO_READ；初始即为READ时直接盖读完时间戳
func NewUserBook(userID, bookID uint, shelf ShelfStatus) *UserBook {
	now := time.Now()
	ub := &UserBook{
		UserID:    userID,
		BookID:    bookID,
		Shelf:     ShelfWantToRead,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch shelf {
	case ShelfCurrentlyReading:
		ub.MarkAsCurrentlyReading()
	case ShelfRead:
		ub.MarkAsRead()
	}

	return ub
}

// MarkAsWantToRead 移到"想读"（领域行为）
// 会清空读完时间戳
func (ub *UserBook) MarkAsWantToRead() {
	ub.Shelf = ShelfWantToRead
	ub.CompletedAt = nil
	ub.UpdatedAt = time.Now()
}

// MarkAsCurrentlyReading 移到"在读"（领域行为）
// 会清空读完时间戳（包括从READ回退的情况）
func (ub *UserBook) MarkAsCurrentlyReading() {
	ub.Shelf = ShelfCurrentlyReading
	ub.CompletedAt = nil
	ub.UpdatedAt = time.Now()
}

// MarkAsRead 移到"已读"（领域行为）
// 每次调用都重新盖时间戳（重复标记READ会刷新读完时间）
func (ub *UserBook) MarkAsRead() {
	now := time.Now()
	ub.Shelf = ShelfRead
	ub.CompletedAt = &now
	ub.UpdatedAt = now
}

// ChangeShelf 按目标状态分发到对应的Mark方法
func (ub *UserBook) ChangeShelf(target ShelfStatus) error {
	switch target {
	case ShelfWantToRead:
		ub.MarkAsWantToRead()
	case ShelfCurrentlyReading:
		ub.MarkAsCurrentlyReading()
	case ShelfRead:
		ub.MarkAsRead()
	default:
		return ErrInvalidShelfStatus
	}
	return nil
}

// IsCompleted 是否已读完
// 条件：状态为READ且有读完时间戳
func (ub *UserBook) IsCompleted() bool {
	return ub.Shelf == ShelfRead && ub.CompletedAt != nil
}

// IsOwnedBy 检查条目是否属于指定用户
func (ub *UserBook) IsOwnedBy(userID uint) bool {
	return ub.UserID == userID
}
