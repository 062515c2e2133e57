package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/blogly/internal/service"
	"github.com/d60-Lab/blogly/pkg/response"
)

type tagForm struct {
	Name  string `form:"name" binding:"notblank"`
	Posts []uint `form:"posts"`
}

func (f tagForm) input() service.TagInput {
	return service.TagInput{Name: f.Name, PostIDs: f.Posts}
}

// ListTags GET /tags
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "tags/index", gin.H{"Tags": tags})
}

// NewTagForm GET /tags/new_tag
func (h *Handler) NewTagForm(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "tags/new", gin.H{"Posts": posts, "Selected": []uint{}})
}

// CreateTag POST /tags/new_tag
func (h *Handler) CreateTag(c *gin.Context) {
	var form tagForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.tagService.Create(c.Request.Context(), form.input()); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/tags")
}

// ShowTag GET /tags/:id
func (h *Handler) ShowTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tag, err := h.tagService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "tags/show", gin.H{"Tag": tag})
}

// EditTagForm GET /tags/:id/edit_tag
func (h *Handler) EditTagForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	tag, err := h.tagService.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	posts, err := h.postService.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "tags/edit", gin.H{"Tag": tag, "Posts": posts, "Selected": tag.PostIDs()})
}

// UpdateTag POST /tags/:id/edit_tag，文章集合整体替换
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form tagForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := h.tagService.Update(c.Request.Context(), id, form.input()); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/tags")
}

// DeleteTag POST /tags/:id/delete，文章保留
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.tagService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/tags")
}
