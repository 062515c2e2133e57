package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/blogly/internal/model"
)

// TagRepository 标签仓储接口
type TagRepository interface {
	// List 按名称排序
	List(ctx context.Context) ([]*model.Tag, error)
	// GetByID 返回标签及其文章，不存在返回 ErrNotFound
	GetByID(ctx context.Context, id uint) (*model.Tag, error)
	// FindByIDs 按 ID 集合过滤，不存在的 ID 被忽略
	FindByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error)
	// Create 在同一事务内写入标签与文章关联；重名返回 ErrConflict
	Create(ctx context.Context, tag *model.Tag, postIDs []uint) error
	// Update 覆盖 name，并整体替换文章集合
	Update(ctx context.Context, tag *model.Tag, postIDs []uint) (*model.Tag, error)
	// Delete 删除标签，仅级联删除 posts_tags，文章保留
	Delete(ctx context.Context, id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository { return &tagRepository{db: db} }

func (r *tagRepository) List(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, translateError(err)
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translateError(err)
	}
	posts, err := postsOfTag(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, translateError(err)
	}
	tag.Posts = posts
	return &tag, nil
}

func (r *tagRepository) FindByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error) {
	tags := []*model.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name").Find(&tags).Error
	return tags, translateError(err)
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag, postIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(tag).Error; err != nil {
			return err
		}
		return replaceTagPosts(tx, tag.ID, postIDs)
	})
	return translateError(err)
}

func (r *tagRepository) Update(ctx context.Context, tag *model.Tag, postIDs []uint) (*model.Tag, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Tag{}).Where("id = ?", tag.ID).Update("name", tag.Name)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return replaceTagPosts(tx, tag.ID, postIDs)
	})
	if err != nil {
		return nil, translateError(err)
	}
	return r.GetByID(ctx, tag.ID)
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Tag{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
