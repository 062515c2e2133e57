package router

import (
	"fmt"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/blogly/internal/api/handler"
	"github.com/d60-Lab/blogly/internal/api/middleware"
	"github.com/d60-Lab/blogly/internal/web"
)

// Options 路由可选项
type Options struct {
	// ServiceName 非空时启用 otelgin 链路追踪
	ServiceName string
	RateLimit   float64
	RateBurst   int
}

// New 组装 gin 引擎：模板、中间件与全部页面路由
func New(h *handler.Handler, opts Options) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.Recovery(), middleware.RequestID(), middleware.Logger())
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if opts.RateLimit > 0 {
		r.Use(middleware.RateLimit(opts.RateLimit, opts.RateBurst))
	}

	r.NoRoute(h.NotFound)
	r.GET("/healthz", h.Health)

	r.GET("/", h.Home)

	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/new_user", h.NewUserForm)
		users.POST("/new_user", h.CreateUser)
		users.GET("/:id", h.ShowUser)
		users.GET("/:id/edit_user", h.EditUserForm)
		users.POST("/:id/edit_user", h.UpdateUser)
		users.POST("/:id/delete", h.DeleteUser)
		users.GET("/:id/posts/new_post", h.NewPostForm)
		users.POST("/:id/posts/new_post", h.CreatePost)
	}

	posts := r.Group("/posts")
	{
		posts.GET("/:id", h.ShowPost)
		posts.GET("/:id/edit_post", h.EditPostForm)
		posts.POST("/:id/edit_post", h.UpdatePost)
		posts.POST("/:id/delete", h.DeletePost)
	}

	tags := r.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.GET("/new_tag", h.NewTagForm)
		tags.POST("/new_tag", h.CreateTag)
		tags.GET("/:id", h.ShowTag)
		tags.GET("/:id/edit_tag", h.EditTagForm)
		tags.POST("/:id/edit_tag", h.UpdateTag)
		tags.POST("/:id/delete", h.DeleteTag)
	}

	return r, nil
}
