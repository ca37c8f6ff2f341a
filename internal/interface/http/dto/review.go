package dto

// CreateReviewRequest HTTP创建书评请求
// 说明：rating不做binding范围校验,越界值由领域层钳制到[0,5]
type CreateReviewRequest struct {
	UserID     uint   `json:"user_id" binding:"required" example:"1"`
	BookID     uint   `json:"book_id" binding:"required" example:"1"`
	Rating     int    `json:"rating" example:"4"`
	ReviewText string `json:"review_text" binding:"max=5000" example:"节奏紧凑,结尾出人意料"`
}

// ReviewResponse HTTP书评响应
type ReviewResponse struct {
	ID         uint   `json:"id" example:"1"`
	UserID     uint   `json:"user_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	Rating     int    `json:"rating" example:"4"`
	ReviewText string `json:"review_text" example:"节奏紧凑,结尾出人意料"`
	CreatedAt  string `json:"created_at" example:"2026-01-15 10:30:00"`
}

// AverageRatingResponse HTTP平均评分响应
type AverageRatingResponse struct {
	BookID        uint    `json:"book_id" example:"1"`
	AverageRating float64 `json:"average_rating" example:"4.33"`
	ReviewCount   int     `json:"review_count" example:"3"`
}
