package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/blogly/internal/model"
)

// PostRepository 文章仓储接口
type PostRepository interface {
	// List 全部文章，新到旧
	List(ctx context.Context) ([]*model.Post, error)
	// Recent 最近文章（含作者），limit 不超过 model.RecentPostsLimit
	Recent(ctx context.Context, limit int) ([]*model.Post, error)
	// ListByUser 某用户的全部文章，新到旧
	ListByUser(ctx context.Context, userID uint) ([]*model.Post, error)
	// GetByID 返回文章及其作者、标签，不存在返回 ErrNotFound
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	// FindByIDs 按 ID 集合过滤，不存在的 ID 被忽略
	FindByIDs(ctx context.Context, ids []uint) ([]*model.Post, error)
	// Create 在同一事务内写入文章与标签关联
	Create(ctx context.Context, post *model.Post, tagIDs []uint) error
	// Update 覆盖 title / content，并整体替换标签集合
	Update(ctx context.Context, post *model.Post, tagIDs []uint) (*model.Post, error)
	// Delete 删除文章，posts_tags 由外键级联删除
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) List(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) Recent(ctx context.Context, limit int) ([]*model.Post, error) {
	if limit <= 0 || limit > model.RecentPostsLimit {
		limit = model.RecentPostsLimit
	}
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, translateError(err)
	}
	tags, err := tagsOfPost(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, translateError(err)
	}
	post.Tags = tags
	return &post, nil
}

func (r *postRepository) FindByIDs(ctx context.Context, ids []uint) ([]*model.Post, error) {
	posts := []*model.Post{}
	if len(ids) == 0 {
		return posts, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) Create(ctx context.Context, post *model.Post, tagIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
	return translateError(err)
}

func (r *postRepository) Update(ctx context.Context, post *model.Post, tagIDs []uint) (*model.Post, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).
			Where("id = ?", post.ID).
			Updates(map[string]any{
				"title":   post.Title,
				"content": post.Content,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
	if err != nil {
		return nil, translateError(err)
	}
	return r.GetByID(ctx, post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
