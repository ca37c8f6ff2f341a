package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookbuddy/server/internal/domain/catalog"
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// bookRepository 图书目录仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. OpenLibraryID在数据库中用指针(NULL)存储,
//    领域实体中用空字符串表示"未关联外部ID"
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书目录仓储
func NewBookRepository(db *gorm.DB) catalog.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *catalog.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// OpenLibraryID唯一索引冲突:并发导入同一本书
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "图书已存在")
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByOpenLibraryID 根据Open Library外部ID查找图书
// 学习要点:外部ID字段有UNIQUE索引,是搜索导入去重的依据
func (r *bookRepository) FindByOpenLibraryID(ctx context.Context, openLibraryID string) (*catalog.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("open_library_id = ?", openLibraryID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// List 查询全部图书
func (r *bookRepository) List(ctx context.Context) ([]*catalog.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*catalog.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books, nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *catalog.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return catalog.ErrBookNotFound
	}

	return nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
// 空的OpenLibraryID转成NULL,避免唯一索引把多本手动录入的图书视为冲突
func toBookModel(b *catalog.Book) *BookModel {
	model := &BookModel{
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CoverURL:    b.CoverURL,
		Genre:       b.Genre.String(),
	}
	if b.OpenLibraryID != "" {
		olid := b.OpenLibraryID
		model.OpenLibraryID = &olid
	}
	return model
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *catalog.Book {
	openLibraryID := ""
	if model.OpenLibraryID != nil {
		openLibraryID = *model.OpenLibraryID
	}
	return &catalog.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		Description:   model.Description,
		CoverURL:      model.CoverURL,
		OpenLibraryID: openLibraryID,
		Genre:         catalog.Genre(model.Genre),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
