package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isDuplicateOnKey 判断唯一索引冲突是否发生在指定索引上
// 用于区分同一张表的多个唯一索引(如users表的username和email)
func isDuplicateOnKey(err error, key string) bool {
	return isDuplicateError(err) && strings.Contains(err.Error(), key)
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 教学要点:事务传递机制,配合TxManager.Transaction使用
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
