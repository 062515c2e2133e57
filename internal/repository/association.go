package repository

import (
	"gorm.io/gorm"

	"github.com/d60-Lab/blogly/internal/model"
)

// replacePostTags 整体替换文章的标签集合：先删后插，须在事务内调用
func replacePostTags(tx *gorm.DB, postID uint, tagIDs []uint) error {
	if err := tx.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error; err != nil {
		return err
	}
	ids, err := existingIDs(tx, &model.Tag{}, tagIDs)
	if err != nil || len(ids) == 0 {
		return err
	}
	rows := make([]model.PostTag, len(ids))
	for i, id := range ids {
		rows[i] = model.PostTag{PostID: postID, TagID: id}
	}
	return tx.Create(&rows).Error
}

// replaceTagPosts 整体替换标签关联的文章集合：先删后插，须在事务内调用
func replaceTagPosts(tx *gorm.DB, tagID uint, postIDs []uint) error {
	if err := tx.Where("tag_id = ?", tagID).Delete(&model.PostTag{}).Error; err != nil {
		return err
	}
	ids, err := existingIDs(tx, &model.Post{}, postIDs)
	if err != nil || len(ids) == 0 {
		return err
	}
	rows := make([]model.PostTag, len(ids))
	for i, id := range ids {
		rows[i] = model.PostTag{PostID: id, TagID: tagID}
	}
	return tx.Create(&rows).Error
}

// existingIDs 过滤出实际存在的 ID（去重、升序），不存在的 ID 被忽略
func existingIDs(tx *gorm.DB, m any, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := tx.Model(m).Where("id IN ?", ids).Order("id").Pluck("id", &found).Error
	return found, err
}

// tagsOfPost 反向查询：文章的标签（按名称）
func tagsOfPost(db *gorm.DB, postID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := db.Model(&model.Tag{}).
		Select("tags.id", "tags.name").
		Joins("JOIN posts_tags ON posts_tags.tag_id = tags.id").
		Where("posts_tags.post_id = ?", postID).
		Order("tags.name").
		Find(&tags).Error
	return tags, err
}

// postsOfTag 反向查询：标签下的文章（新到旧）
func postsOfTag(db *gorm.DB, tagID uint) ([]model.Post, error) {
	var posts []model.Post
	err := db.Model(&model.Post{}).
		Select("posts.id", "posts.title", "posts.content", "posts.created_at", "posts.user_id").
		Joins("JOIN posts_tags ON posts_tags.post_id = posts.id").
		Where("posts_tags.tag_id = ?", tagID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	return posts, err
}
