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

// UserInput 用户表单字段；ImageURL 为空时使用默认头像
type UserInput struct {
	FirstName string
	LastName  string
	ImageURL  string
}

// UserService 用户服务
type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, in UserInput) (*model.User, error)
	Update(ctx context.Context, id uint, in UserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	cache cache.PostCache
}

func NewUserService(users repository.UserRepository, postCache cache.PostCache) UserService {
	return &userService{users: users, cache: orNoop(postCache)}
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	user, err := in.toModel()
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user created", zap.Uint("user_id", user.ID), zap.String("name", user.FullName()))
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, in UserInput) (*model.User, error) {
	user, err := in.toModel()
	if err != nil {
		return nil, err
	}
	user.ID = id
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache)
	logger.Info("user updated", zap.Uint("user_id", id))
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache)
	logger.Info("user deleted", zap.Uint("user_id", id), zap.Int("posts", len(user.Posts)))
	return user, nil
}

func (in UserInput) toModel() (*model.User, error) {
	if err := requireFields(map[string]string{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
	}); err != nil {
		return nil, err
	}
	img := strings.TrimSpace(in.ImageURL)
	if img == "" {
		img = model.DefaultImageURL
	}
	return &model.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		ImageURL:  img,
	}, nil
}
