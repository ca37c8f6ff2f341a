package dto

// CreateBookRequest HTTP创建图书请求
// validator tag说明:
// - required: 必填字段
// - omitempty: 可选字段,留空时跳过后续校验
// - oneof: 枚举取值校验(与领域层ParseGenre保持一致)
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required,max=200" example:"The Hobbit"`
	Author        string `json:"author" binding:"required,max=100" example:"J.R.R. Tolkien"`
	Description   string `json:"description" binding:"max=5000" example:"比尔博·巴金斯的冒险故事"`
	CoverURL      string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://covers.openlibrary.org/b/id/14627509-L.jpg"`
	OpenLibraryID string `json:"open_library_id" binding:"omitempty,max=50" example:"OL262758W"`
	Genre         string `json:"genre" binding:"omitempty,oneof=FICTION NON_FICTION FANTASY SCIENCE_FICTION MYSTERY ROMANCE CLASSICS PHILOSOPHY HISTORY BIOGRAPHY PSYCHOLOGY OTHER" example:"FANTASY"`
}

// UpdateBookRequest HTTP更新图书请求
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"The Hobbit"`
	Author      string `json:"author" binding:"required,max=100" example:"J.R.R. Tolkien"`
	Description string `json:"description" binding:"max=5000"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500"`
	Genre       string `json:"genre" binding:"omitempty,oneof=FICTION NON_FICTION FANTASY SCIENCE_FICTION MYSTERY ROMANCE CLASSICS PHILOSOPHY HISTORY BIOGRAPHY PSYCHOLOGY OTHER"`
}

// BookResponse HTTP图书响应
// 用于单个图书详情返回
type BookResponse struct {
	ID            uint   `json:"id" example:"1"`
	Title         string `json:"title" example:"The Hobbit"`
	Author        string `json:"author" example:"J.R.R. Tolkien"`
	Description   string `json:"description" example:"比尔博·巴金斯的冒险故事"`
	CoverURL      string `json:"cover_url" example:"https://covers.openlibrary.org/b/id/14627509-L.jpg"`
	OpenLibraryID string `json:"open_library_id,omitempty" example:"OL262758W"`
	Genre         string `json:"genre" example:"FANTASY"`
	CreatedAt     string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt     string `json:"updated_at" example:"2026-01-15 10:30:00"`
}
