package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/blogly/internal/service"
	"github.com/d60-Lab/blogly/pkg/response"
)

type postForm struct {
	Title   string `form:"title" binding:"notblank"`
	Content string `form:"content" binding:"notblank"`
	Tags    []uint `form:"tags"`
}

func (f postForm) input() service.PostInput {
	return service.PostInput{Title: f.Title, Content: f.Content, TagIDs: f.Tags}
}

// NewPostForm GET /users/:id/posts/new_post
func (h *Handler) NewPostForm(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	tags, err := h.tagService.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "posts/new", gin.H{"User": user, "Tags": tags, "Selected": []uint{}})
}

// CreatePost POST /users/:id/posts/new_post
func (h *Handler) CreatePost(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form postForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.postService.Create(c.Request.Context(), userID, form.input()); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/users/%d", userID))
}

// ShowPost GET /posts/:id
func (h *Handler) ShowPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "posts/show", gin.H{"Post": post})
}

// EditPostForm GET /posts/:id/edit_post
func (h *Handler) EditPostForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	post, err := h.postService.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	tags, err := h.tagService.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "posts/edit", gin.H{"Post": post, "Tags": tags, "Selected": post.TagIDs()})
}

// UpdatePost POST /posts/:id/edit_post，标签集合整体替换
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form postForm
	if !bindForm(c, &form) {
		return
	}
	post, err := h.postService.Update(c.Request.Context(), id, form.input())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/users/%d", post.UserID))
}

// DeletePost POST /posts/:id/delete
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.postService.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/users/%d", post.UserID))
}
