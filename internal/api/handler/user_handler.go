package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/blogly/internal/service"
	"github.com/d60-Lab/blogly/pkg/response"
)

type userForm struct {
	FirstName string `form:"first_name" binding:"notblank"`
	LastName  string `form:"last_name" binding:"notblank"`
	ImageURL  string `form:"image_url"`
}

func (f userForm) input() service.UserInput {
	return service.UserInput{FirstName: f.FirstName, LastName: f.LastName, ImageURL: f.ImageURL}
}

// ListUsers GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "users/index", gin.H{"Users": users})
}

// NewUserForm GET /users/new_user
func (h *Handler) NewUserForm(c *gin.Context) {
	response.Render(c, "users/new", gin.H{})
}

// CreateUser POST /users/new_user
func (h *Handler) CreateUser(c *gin.Context) {
	var form userForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.userService.Create(c.Request.Context(), form.input()); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/users")
}

// ShowUser GET /users/:id
func (h *Handler) ShowUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "users/show", gin.H{"User": user})
}

// EditUserForm GET /users/:id/edit_user
func (h *Handler) EditUserForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "users/edit", gin.H{"User": user})
}

// UpdateUser POST /users/:id/edit_user
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form userForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.userService.Update(c.Request.Context(), id, form.input()); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/users")
}

// DeleteUser POST /users/:id/delete，级联删除其文章
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/users")
}
