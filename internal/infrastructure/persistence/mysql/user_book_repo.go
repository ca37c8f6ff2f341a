package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookbuddy/server/internal/domain/library"
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// userBookRepository 书架条目仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/library/repository.go定义的接口
// 2. 书架条目硬删除:从书架移除即物理删除
// 3. 事务通过context传递(配合TxManager)
type userBookRepository struct {
	db *gorm.DB
}

// NewUserBookRepository 创建书架条目仓储
func NewUserBookRepository(db *gorm.DB) library.Repository {
	return &userBookRepository{db: db}
}

// Create 创建书架条目
func (r *userBookRepository) Create(ctx context.Context, ub *library.UserBook) error {
	model := toUserBookModel(ub)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建书架条目失败")
	}

	ub.ID = model.ID
	ub.CreatedAt = model.CreatedAt
	ub.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找书架条目
func (r *userBookRepository) FindByID(ctx context.Context, id uint) (*library.UserBook, error) {
	var model UserBookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, library.ErrUserBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询书架条目失败")
	}

	return toUserBookEntity(&model), nil
}

// List 查询全部书架条目
func (r *userBookRepository) List(ctx context.Context) ([]*library.UserBook, error) {
	var models []UserBookModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询书架列表失败")
	}
	return toUserBookEntities(models), nil
}

// ListByUserID 查询某用户的书架
func (r *userBookRepository) ListByUserID(ctx context.Context, userID uint) ([]*library.UserBook, error) {
	var models []UserBookModel
	err := getDB(ctx, r.db).Where("user_id = ?", userID).Order("id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询用户书架失败")
	}
	return toUserBookEntities(models), nil
}

// ListByBookID 查询引用某图书的书架条目
func (r *userBookRepository) ListByBookID(ctx context.Context, bookID uint) ([]*library.UserBook, error) {
	var models []UserBookModel
	err := getDB(ctx, r.db).Where("book_id = ?", bookID).Order("id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书书架条目失败")
	}
	return toUserBookEntities(models), nil
}

// Update 更新书架条目(状态与读完时间戳)
func (r *userBookRepository) Update(ctx context.Context, ub *library.UserBook) error {
	model := toUserBookModel(ub)
	model.ID = ub.ID
	model.CreatedAt = ub.CreatedAt

	// 使用Select强制写入CompletedAt,保证从READ回退时NULL能落库
	// (Save对nil指针字段会跳过更新)
	err := getDB(ctx, r.db).Model(&UserBookModel{ID: ub.ID}).
		Select("shelf", "completed_at", "updated_at").
		Updates(map[string]interface{}{
			"shelf":        model.Shelf,
			"completed_at": model.CompletedAt,
			"updated_at":   ub.UpdatedAt,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新书架条目失败")
	}

	return nil
}

// Delete 删除书架条目(硬删除)
func (r *userBookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&UserBookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书架条目失败")
	}

	if result.RowsAffected == 0 {
		return library.ErrUserBookNotFound
	}

	return nil
}

// DeleteByUserID 删除某用户的全部书架条目
// 用途:删除用户时级联清理(在同一事务中调用)
func (r *userBookRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	err := getDB(ctx, r.db).Where("user_id = ?", userID).Delete(&UserBookModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除用户书架失败")
	}
	return nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

func toUserBookModel(ub *library.UserBook) *UserBookModel {
	return &UserBookModel{
		UserID:      ub.UserID,
		BookID:      ub.BookID,
		Shelf:       ub.Shelf.String(),
		CompletedAt: ub.CompletedAt,
	}
}

func toUserBookEntity(model *UserBookModel) *library.UserBook {
	return &library.UserBook{
		ID:          model.ID,
		UserID:      model.UserID,
		BookID:      model.BookID,
		Shelf:       library.ShelfStatus(model.Shelf),
		CompletedAt: model.CompletedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toUserBookEntities(models []UserBookModel) []*library.UserBook {
	entities := make([]*library.UserBook, 0, len(models))
	for i := range models {
		entities = append(entities, toUserBookEntity(&models[i]))
	}
	return entities
}
