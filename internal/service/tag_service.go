package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/blogly/internal/model"
	"github.com/d60-Lab/blogly/internal/repository"
	"github.com/d60-Lab/blogly/pkg/logger"
)

// TagInput 标签表单字段
type TagInput struct {
	Name    string
	PostIDs []uint
}

// TagService 标签服务；首页不展示标签，因此标签写操作不影响首页缓存
type TagService interface {
	List(ctx context.Context) ([]*model.Tag, error)
	Get(ctx context.Context, id uint) (*model.Tag, error)
	// Create 重名返回 repository.ErrConflict
	Create(ctx context.Context, in TagInput) (*model.Tag, error)
	Update(ctx context.Context, id uint, in TagInput) (*model.Tag, error)
	Delete(ctx context.Context, id uint) (*model.Tag, error)
}

type tagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) List(ctx context.Context) ([]*model.Tag, error) {
	return s.tags.List(ctx)
}

func (s *tagService) Get(ctx context.Context, id uint) (*model.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

func (s *tagService) Create(ctx context.Context, in TagInput) (*model.Tag, error) {
	if err := requireFields(map[string]string{"name": in.Name}); err != nil {
		return nil, err
	}
	tag := &model.Tag{Name: strings.TrimSpace(in.Name)}
	if err := s.tags.Create(ctx, tag, normalizeIDs(in.PostIDs)); err != nil {
		return nil, err
	}
	logger.Info("tag created", zap.Uint("tag_id", tag.ID), zap.String("name", tag.Name))
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, id uint, in TagInput) (*model.Tag, error) {
	if err := requireFields(map[string]string{"name": in.Name}); err != nil {
		return nil, err
	}
	tag := &model.Tag{ID: id, Name: strings.TrimSpace(in.Name)}
	updated, err := s.tags.Update(ctx, tag, normalizeIDs(in.PostIDs))
	if err != nil {
		return nil, err
	}
	logger.Info("tag updated", zap.Uint("tag_id", id), zap.Int("posts", len(updated.Posts)))
	return updated, nil
}

func (s *tagService) Delete(ctx context.Context, id uint) (*model.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return nil, err
	}
	logger.Info("tag deleted", zap.Uint("tag_id", id), zap.String("name", tag.Name))
	return tag, nil
}
