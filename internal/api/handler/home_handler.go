package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/blogly/pkg/response"
)

// Home 最近 5 篇文章
func (h *Handler) Home(c *gin.Context) {
	posts, err := h.postService.Recent(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Render(c, "home", gin.H{"Posts": posts})
}
