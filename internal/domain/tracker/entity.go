package tracker

import (
	"math"
	"time"

	"github.com/bookbuddy/server/internal/domain/library"
)

// MonthlyTracker 月度阅读追踪器实体（聚合根）
// DDD设计说明：
// 1. MonthlyTracker是聚合根，TrackerBook是子实体
// 2. 每个用户每个(月份,年份)最多一个追踪器（数据库唯一索引保证）
// 3. 子实体不常驻内存：TrackerBook按需从Repository加载
type MonthlyTracker struct {
	ID             uint
	UserID         uint   // 所属用户ID
	Month          Month  // 月份（1-12）
	Year           string // 年份（4位数字字符串）
	TargetBooksNum int    // 目标读完数量（>=1）
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TrackerBook 追踪器中的图书（子实体）
// 设计说明：
// 1. 不是独立聚合根，必须通过MonthlyTracker访问
// 2. 不直接关联UserBook对象，只保存UserBookID（避免跨聚合引用）
// 3. (TrackerID, UserBookID)唯一（数据库唯一索引保证）
type TrackerBook struct {
	ID         uint
	TrackerID  uint // 所属追踪器ID
	UserBookID uint // 书架条目ID
	Completed  bool // 是否已在该月读完
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewMonthlyTracker 创建追踪器（工厂方法）
// 参数校验（月份、年份、目标数量）由Service完成
func NewMonthlyTracker(userID uint, month Month, year string, targetBooksNum int) *MonthlyTracker {
	now := time.Now()
	return &MonthlyTracker{
		UserID:         userID,
		Month:          month,
		Year:           year,
		TargetBooksNum: targetBooksNum,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewTrackerBook 创建追踪器图书（工厂方法）
func NewTrackerBook(trackerID, userBookID uint) *TrackerBook {
	now := time.Now()
	return &TrackerBook{
		TrackerID:  trackerID,
		UserBookID: userBookID,
		Completed:  false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// MarkCompleted 标记为已读完（领域行为）
func (tb *TrackerBook) MarkCompleted() {
	tb.Completed = true
	tb.UpdatedAt = time.Now()
}

// UpdateGoal 更新目标读完数量（领域行为）
// 业务规则：目标必须>=1
func (t *MonthlyTracker) UpdateGoal(targetBooksNum int) error {
	if targetBooksNum < 1 {
		return ErrInvalidGoal
	}
	t.TargetBooksNum = targetBooksNum
	t.UpdatedAt = time.Now()
	return nil
}

// CanAdmit 图书准入检查
// 规则：条目存在、归属同一用户、且不在"已读"架上才能加入追踪器
// 不满足时的具体拒绝原因见AdmissionError
func (t *MonthlyTracker) CanAdmit(ub *library.UserBook) bool {
	return t.AdmissionError(ub) == nil
}

// AdmissionError 返回图书不能加入追踪器的原因（可以加入时返回nil）
func (t *MonthlyTracker) AdmissionError(ub *library.UserBook) error {
	if ub == nil {
		return library.ErrUserBookNotFound
	}
	if !ub.IsOwnedBy(t.UserID) {
		return ErrOwnerMismatch
	}
	if ub.Shelf == library.ShelfRead {
		return ErrBookAlreadyRead
	}
	return nil
}

// IsOwnedBy 检查追踪器是否属于指定用户
func (t *MonthlyTracker) IsOwnedBy(userID uint) bool {
	return t.UserID == userID
}

// Progress 追踪进度
type Progress struct {
	TrackerID            uint    `json:"tracker_id"`
	TargetBooks          int     `json:"target_books"`
	TotalBooks           int     `json:"total_books"`
	CompletedBooks       int     `json:"completed_books"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Month                string  `json:"month"`
	Year                 string  `json:"year"`
}

// CalculateProgress 计算追踪进度
// 业务规则：
// 1. 完成度 = 已读完数 * 100 / 目标数，保留两位小数
// 2. 目标数<=0时完成度为0（避免除零）
// 3. 完成度可以超过100%（读完数超过目标时不封顶）
func (t *MonthlyTracker) CalculateProgress(books []*TrackerBook) Progress {
	completed := 0
	for _, tb := range books {
		if tb.Completed {
			completed++
		}
	}

	percentage := 0.0
	if t.TargetBooksNum > 0 {
		percentage = float64(completed) * 100 / float64(t.TargetBooksNum)
		percentage = math.Round(percentage*100) / 100
	}

	return Progress{
		TrackerID:            t.ID,
		TargetBooks:          t.TargetBooksNum,
		TotalBooks:           len(books),
		CompletedBooks:       completed,
		CompletionPercentage: percentage,
		Month:                t.Month.String(),
		Year:                 t.Year,
	}
}
