package catalog

import (
	"time"
)

// Genre 图书分类
// 设计说明：
// 1. 使用string类型（直接作为API与数据库的取值，可读性优先）
// 2. 定义为类型别名，便于添加方法
// 3. 解析失败返回错误而不是panic（见ParseGenre）
type Genre string

const (
	GenreFiction        Genre = "FICTION"
	GenreNonFiction     Genre = "NON_FICTION"
	GenreFantasy        Genre = "FANTASY"
	GenreScienceFiction Genre = "SCIENCE_FICTION"
	GenreMystery        Genre = "MYSTERY"
	GenreRomance        Genre = "ROMANCE"
	GenreClassics       Genre = "CLASSICS"
	GenrePhilosophy     Genre = "PHILOSOPHY"
	GenreHistory        Genre = "HISTORY"
	GenreBiography      Genre = "BIOGRAPHY"
	GenrePsychology     Genre = "PSYCHOLOGY"
	GenreOther          Genre = "OTHER"
)

// allGenres 全部合法取值（用于解析与校验）
var allGenres = map[Genre]struct{}{
	GenreFiction:        {},
	GenreNonFiction:     {},
	GenreFantasy:        {},
	GenreScienceFiction: {},
	GenreMystery:        {},
	GenreRomance:        {},
	GenreClassics:       {},
	GenrePhilosophy:     {},
	GenreHistory:        {},
	GenreBiography:      {},
	GenrePsychology:     {},
	GenreOther:          {},
}

// String 实现Stringer接口
func (g Genre) String() string {
	return string(g)
}

// IsValid 判断是否为合法分类
func (g Genre) IsValid() bool {
	_, ok := allGenres[g]
	return ok
}

// ParseGenre 解析图书分类
// 空字符串返回默认值OTHER；非法取值返回ErrInvalidGenre
func ParseGenre(s string) (Genre, error) {
	if s == "" {
		return GenreOther, nil
	}
	g := Genre(s)
	if !g.IsValid() {
		return "", ErrInvalidGenre
	}
	return g, nil
}

// Book 图书目录实体（聚合根）
// DDD设计说明：
// 1. Book是共享目录的条目，所有用户的书架/书评都引用它
// 2. OpenLibraryID是外部唯一标识（来自Open Library搜索导入），
//    手动录入的图书该字段为空
// 3. 按OpenLibraryID去重：相同外部ID只存一条记录
type Book struct {
	ID            uint
	Title         string // 书名
	Author        string // 作者
	Description   string // 简介
	CoverURL      string // 封面图片URL
	OpenLibraryID string // Open Library作品ID（如OL82563W），可为空
	Genre         Genre  // 分类
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书（工厂方法）
func NewBook(title, author, description, coverURL, openLibraryID string, genre Genre) *Book {
	now := time.Now()
	if genre == "" {
		genre = GenreOther
	}
	return &Book{
		Title:         title,
		Author:        author,
		Description:   description,
		CoverURL:      coverURL,
		OpenLibraryID: openLibraryID,
		Genre:         genre,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateInfo 全量更新图书信息（领域行为）
// 业务规则：目录更新是全字段覆盖（与用户信息的部分更新不同）
func (b *Book) UpdateInfo(title, author, description, coverURL string, genre Genre) error {
	if title == "" || author == "" {
		return ErrInvalidBookInfo
	}
	if genre == "" {
		genre = GenreOther
	}
	if !genre.IsValid() {
		return ErrInvalidGenre
	}

	b.Title = title
	b.Author = author
	b.Description = description
	b.CoverURL = coverURL
	b.Genre = genre
	b.UpdatedAt = time.Now()
	return nil
}

// HasOpenLibraryID 是否关联了Open Library外部ID
func (b *Book) HasOpenLibraryID() bool {
	return b.OpenLibraryID != ""
}
