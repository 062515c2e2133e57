package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/blogly/internal/model"
)

// Migrate 创建（若不存在）users / posts / tags / posts_tags 及其约束，可重复执行
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Tag{},
		&model.PostTag{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
