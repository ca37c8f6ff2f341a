package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookbuddy/server/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 学习要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. 生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
func autoMigrate(db *gorm.DB) error {
	// 定义需要迁移的模型
	// 注意：这里需要使用GORM的模型定义（带tag），不是domain层的实体
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&UserBookModel{},
		&ReviewModel{},
		&MonthlyTrackerModel{},
		&MonthlyTrackerBookModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	FirstName string         `gorm:"size:50;comment:名"`
	LastName  string         `gorm:"size:50;comment:姓"`
	Username  string         `gorm:"uniqueIndex;size:50;not null;comment:用户名"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书目录模型
// 设计说明:
// 1. 目录为全部用户共享,书架/书评通过BookID引用
// 2. OpenLibraryID用指针存储:手动录入的图书为NULL,
//    避免空字符串在唯一索引上互相冲突
// 3. Genre以字符串存储,取值由domain层的枚举约束
type BookModel struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author        string         `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Description   string         `gorm:"type:text;comment:图书简介"`
	CoverURL      string         `gorm:"size:500;comment:封面图片URL"`
	OpenLibraryID *string        `gorm:"uniqueIndex;size:50;comment:Open Library作品ID"`
	Genre         string         `gorm:"size:30;not null;comment:图书分类"`
	CreatedAt     time.Time      `gorm:"comment:创建时间"`
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "book_catalog"
}

// UserBookModel GORM书架条目模型
// 设计说明:
// 1. 表示"某用户书架上的某本书",关联users和book_catalog
// 2. CompletedAt只在READ状态有值
// 3. 硬删除:从书架移除即物理删除记录
type UserBookModel struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"index;not null;comment:所属用户ID"`
	BookID      uint       `gorm:"index;not null;comment:目录图书ID"`
	Shelf       string     `gorm:"size:20;not null;comment:书架状态"`
	CompletedAt *time.Time `gorm:"comment:读完时间(仅READ状态)"`
	CreatedAt   time.Time  `gorm:"comment:创建时间"`
	UpdatedAt   time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserBookModel) TableName() string {
	return "user_books"
}

// ReviewModel GORM书评模型
// 设计说明:同一用户可对同一本书发表多条书评,不加唯一索引
type ReviewModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null;comment:评论者用户ID"`
	BookID     uint      `gorm:"index;not null;comment:目录图书ID"`
	Rating     int       `gorm:"type:tinyint;not null;comment:评分(0-5)"`
	ReviewText string    `gorm:"type:text;comment:评论内容"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// MonthlyTrackerModel GORM月度追踪器模型
// 设计说明:
// 1. (user_id, month, year)复合唯一索引:每个用户每个月份最多一个追踪器
// 2. 唯一性由数据库保证,应用层的SELECT检查只是给出友好错误
type MonthlyTrackerModel struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"uniqueIndex:idx_user_period;not null;comment:所属用户ID"`
	Month          int       `gorm:"uniqueIndex:idx_user_period;type:tinyint;not null;comment:月份(1-12)"`
	Year           string    `gorm:"uniqueIndex:idx_user_period;size:4;not null;comment:年份"`
	TargetBooksNum int       `gorm:"not null;comment:目标读完数量"`
	CreatedAt      time.Time `gorm:"comment:创建时间"`
	UpdatedAt      time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (MonthlyTrackerModel) TableName() string {
	return "monthly_trackers"
}

// MonthlyTrackerBookModel GORM追踪器图书模型
// 设计说明:
// 1. (tracker_id, user_book_id)复合唯一索引:同一条目不能重复加入同一追踪器
// 2. 删除追踪器时级联删除其图书(Repository的Delete保证)
type MonthlyTrackerBookModel struct {
	ID         uint      `gorm:"primaryKey"`
	TrackerID  uint      `gorm:"uniqueIndex:idx_tracker_book;not null;comment:所属追踪器ID"`
	UserBookID uint      `gorm:"uniqueIndex:idx_tracker_book;not null;comment:书架条目ID"`
	Completed  bool      `gorm:"not null;default:false;comment:是否已在该月读完"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (MonthlyTrackerBookModel) TableName() string {
	return "monthly_tracker_books"
}
