package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/blogly/internal/cache"
	"github.com/d60-Lab/blogly/internal/model"
	"github.com/d60-Lab/blogly/internal/repository"
	"github.com/d60-Lab/blogly/pkg/logger"
)

// PostInput 文章表单字段
type PostInput struct {
	Title   string
	Content string
	TagIDs  []uint
}

// PostService 文章服务
type PostService interface {
	// Recent 首页最近文章，优先读缓存
	Recent(ctx context.Context) ([]*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	// Create 为用户发文，用户不存在返回 repository.ErrNotFound
	Create(ctx context.Context, userID uint, in PostInput) (*model.Post, error)
	Update(ctx context.Context, id uint, in PostInput) (*model.Post, error)
	Delete(ctx context.Context, id uint) (*model.Post, error)
}

type postService struct {
	users repository.UserRepository
	posts repository.PostRepository
	cache cache.PostCache
}

func NewPostService(users repository.UserRepository, posts repository.PostRepository, postCache cache.PostCache) PostService {
	return &postService{users: users, posts: posts, cache: orNoop(postCache)}
}

func (s *postService) Recent(ctx context.Context) ([]*model.Post, error) {
	if posts, ok := s.cache.GetRecent(ctx); ok {
		return posts, nil
	}
	posts, err := s.posts.Recent(ctx, model.RecentPostsLimit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetRecent(ctx, posts); err != nil {
		logger.Warn("fill recent posts cache failed", zap.Error(err))
	}
	return posts, nil
}

func (s *postService) List(ctx context.Context) ([]*model.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, userID uint, in PostInput) (*model.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	post := &model.Post{
		Title:   strings.TrimSpace(in.Title),
		Content: in.Content,
		UserID:  userID,
	}
	if err := s.posts.Create(ctx, post, normalizeIDs(in.TagIDs)); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache)
	logger.Info("post created", zap.Uint("post_id", post.ID), zap.Uint("user_id", userID))
	return post, nil
}

func (s *postService) Update(ctx context.Context, id uint, in PostInput) (*model.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	post := &model.Post{ID: id, Title: strings.TrimSpace(in.Title), Content: in.Content}
	updated, err := s.posts.Update(ctx, post, normalizeIDs(in.TagIDs))
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache)
	logger.Info("post updated", zap.Uint("post_id", id), zap.Int("tags", len(updated.Tags)))
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache)
	logger.Info("post deleted", zap.Uint("post_id", id))
	return post, nil
}

func (in PostInput) validate() error {
	return requireFields(map[string]string{
		"title":   in.Title,
		"content": in.Content,
	})
}
