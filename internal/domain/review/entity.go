package review

import (
	"time"
)

// 评分取值范围（闭区间）
const (
	MinRating = 0
	MaxRating = 5
)

// Review 书评实体（聚合根）
// DDD设计说明：
// 1. 一条书评关联一个用户和一本目录图书
// 2. 评分越界不报错，静默截断到[0,5]（构造和修改时都截断）
// 3. 同一用户可对同一本书发表多条书评（不做唯一约束）
type Review struct {
	ID         uint
	UserID     uint   // 评论者用户ID
	BookID     uint   // 目录图书ID
	Rating     int    // 评分（0-5）
	ReviewText string // 评论内容（可为空）
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReview 创建书评（工厂方法）
// 评分自动截断到[0,5]
func NewReview(userID, bookID uint, rating int, reviewText string) *Review {
	now := time.Now()
	return &Review{
		UserID:     userID,
		BookID:     bookID,
		Rating:     clampRating(rating),
		ReviewText: reviewText,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetRating 修改评分（领域行为）
// 同样执行截断，保证任何路径写入的评分都在合法区间
func (r *Review) SetRating(rating int) {
	r.Rating = clampRating(rating)
	r.UpdatedAt = time.Now()
}

// clampRating 将评分截断到[MinRating, MaxRating]
func clampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// AverageRating 计算平均评分
// 空列表返回0.0（不是NaN）
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0.0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
