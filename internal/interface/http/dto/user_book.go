package dto

// AddUserBookRequest HTTP添加图书到书架请求
// 说明：shelf留空时默认放入WANT_TO_READ架
type AddUserBookRequest struct {
	UserID uint   `json:"user_id" binding:"required" example:"1"`
	BookID uint   `json:"book_id" binding:"required" example:"1"`
	Shelf  string `json:"shelf" binding:"omitempty,oneof=WANT_TO_READ CURRENTLY_READING READ" example:"WANT_TO_READ"`
}

// AddFromSearchRequest HTTP从搜索结果导入图书请求
// 说明：open_library_id用于查找或创建目录图书(同一本书只入目录一次)
type AddFromSearchRequest struct {
	UserID        uint   `json:"user_id" binding:"required" example:"1"`
	OpenLibraryID string `json:"open_library_id" binding:"required,max=50" example:"OL262758W"`
	Title         string `json:"title" binding:"required,max=200" example:"The Hobbit"`
	Author        string `json:"author" binding:"max=100" example:"J.R.R. Tolkien"`
	CoverURL      string `json:"cover_url" binding:"omitempty,url,max=500"`
	Genre         string `json:"genre" binding:"omitempty,oneof=FICTION NON_FICTION FANTASY SCIENCE_FICTION MYSTERY ROMANCE CLASSICS PHILOSOPHY HISTORY BIOGRAPHY PSYCHOLOGY OTHER"`
	Shelf         string `json:"shelf" binding:"omitempty,oneof=WANT_TO_READ CURRENTLY_READING READ"`
}

// ChangeShelfRequest HTTP换架请求
// 说明：换架必须指定目标架,不接受留空默认
type ChangeShelfRequest struct {
	Shelf string `json:"shelf" binding:"required,oneof=WANT_TO_READ CURRENTLY_READING READ" example:"CURRENTLY_READING"`
}

// UserBookResponse HTTP书架条目响应
type UserBookResponse struct {
	ID          uint   `json:"id" example:"1"`
	UserID      uint   `json:"user_id" example:"1"`
	BookID      uint   `json:"book_id" example:"1"`
	Shelf       string `json:"shelf" example:"WANT_TO_READ"`
	CompletedAt string `json:"completed_at,omitempty" example:"2026-01-20 18:00:00"`
	CreatedAt   string `json:"created_at" example:"2026-01-15 10:30:00"`
}
