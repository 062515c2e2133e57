package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/d60-Lab/blogly/internal/repository"
	"github.com/d60-Lab/blogly/internal/service"
	"github.com/d60-Lab/blogly/pkg/response"
)

// Pinger 健康检查依赖（*sql.DB 满足）
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler 页面处理器
type Handler struct {
	userService service.UserService
	postService service.PostService
	tagService  service.TagService
	db          Pinger
}

func New(userService service.UserService, postService service.PostService, tagService service.TagService, db Pinger) *Handler {
	return &Handler{
		userService: userService,
		postService: postService,
		tagService:  tagService,
		db:          db,
	}
}

// RegisterValidators 向 gin 的 validator 注册 notblank（拒绝纯空白）
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// Health 存活检查
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound 未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	response.NotFound(c)
}

// pathID 解析路径中的正整数 ID；非法 ID 不可能对应任何记录，按 404 处理
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}

// bindForm 绑定表单，失败时返回 400
func bindForm(c *gin.Context, form any) bool {
	if err := c.ShouldBindWith(form, binding.Form); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Malformed form submission."
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is required", formFieldName(fe.Field())))
	}
	return strings.Join(msgs, "; ")
}

func formFieldName(field string) string {
	switch field {
	case "FirstName":
		return "first name"
	case "LastName":
		return "last name"
	default:
		return strings.ToLower(field)
	}
}

// fail 将服务层错误映射为响应
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c)
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrInvalidReference):
		response.BadRequest(c, "The submission references a record that does not exist.")
	case errors.Is(err, repository.ErrConflict):
		response.Conflict(c, "A record with that value already exists.")
	default:
		response.InternalError(c, err)
	}
}
