package dto

// CreateTrackerRequest HTTP创建月度追踪器请求
// 说明：month为1-12的数字,year为4位年份字符串("2000"-"2100")
type CreateTrackerRequest struct {
	UserID         uint   `json:"user_id" binding:"required" example:"1"`
	Month          int    `json:"month" binding:"required,min=1,max=12" example:"9"`
	Year           string `json:"year" binding:"required,len=4" example:"2026"`
	TargetBooksNum int    `json:"target_books_num" binding:"required,min=1" example:"5"`
}

// UpdateGoalRequest HTTP调整月度目标请求
type UpdateGoalRequest struct {
	TargetBooksNum int `json:"target_books_num" binding:"required,min=1" example:"8"`
}

// TrackerResponse HTTP追踪器响应
// 说明：month返回月份名称(如SEPTEMBER),month_value返回数字
type TrackerResponse struct {
	ID             uint   `json:"id" example:"1"`
	UserID         uint   `json:"user_id" example:"1"`
	Month          string `json:"month" example:"SEPTEMBER"`
	MonthValue     int    `json:"month_value" example:"9"`
	Year           string `json:"year" example:"2026"`
	TargetBooksNum int    `json:"target_books_num" example:"5"`
	CreatedAt      string `json:"created_at" example:"2026-09-01 10:30:00"`
}

// AddTrackerBookRequest HTTP添加图书到追踪器请求
type AddTrackerBookRequest struct {
	TrackerID  uint `json:"tracker_id" binding:"required" example:"1"`
	UserBookID uint `json:"user_book_id" binding:"required" example:"1"`
}

// BulkAddTrackerBooksRequest HTTP批量添加追踪器图书请求
type BulkAddTrackerBooksRequest struct {
	TrackerID   uint   `json:"tracker_id" binding:"required" example:"1"`
	UserBookIDs []uint `json:"user_book_ids" binding:"required,min=1" example:"1,2,3"`
}

// TrackerBookResponse HTTP追踪器图书响应
type TrackerBookResponse struct {
	ID         uint   `json:"id" example:"1"`
	TrackerID  uint   `json:"tracker_id" example:"1"`
	UserBookID uint   `json:"user_book_id" example:"1"`
	Completed  bool   `json:"completed" example:"false"`
	CreatedAt  string `json:"created_at" example:"2026-09-01 10:30:00"`
}

// ContainsBookResponse HTTP追踪器包含检查响应
type ContainsBookResponse struct {
	TrackerID  uint `json:"tracker_id" example:"1"`
	UserBookID uint `json:"user_book_id" example:"1"`
	Contains   bool `json:"contains" example:"true"`
}

// CleanUpResponse HTTP清理已完成图书响应
type CleanUpResponse struct {
	TrackerID    uint  `json:"tracker_id" example:"1"`
	RemovedCount int64 `json:"removed_count" example:"3"`
}

// ProgressResponse HTTP阅读进度响应
// 说明：completion_percentage四舍五入到两位小数,超额完成时可超过100
type ProgressResponse struct {
	TrackerID            uint    `json:"tracker_id" example:"1"`
	TargetBooks          int     `json:"target_books" example:"5"`
	TotalBooks           int     `json:"total_books" example:"3"`
	CompletedBooks       int     `json:"completed_books" example:"2"`
	CompletionPercentage float64 `json:"completion_percentage" example:"40"`
	Month                string  `json:"month" example:"SEPTEMBER"`
	Year                 string  `json:"year" example:"2026"`
}
