package response

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/blogly/pkg/logger"
)

// 错误页模板名
const errorTemplate = "error"

// Render 渲染 200 页面
func Render(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect 表单提交成功后跳转（303，浏览器以 GET 访问新地址）
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func BadRequest(c *gin.Context, message string) {
	renderError(c, http.StatusBadRequest, "Bad Request", message)
}

func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page Not Found", "The page you are looking for does not exist.")
}

func Conflict(c *gin.Context, message string) {
	renderError(c, http.StatusConflict, "Conflict", message)
}

// InternalError 记录错误并上报 sentry，页面不暴露内部细节
func InternalError(c *gin.Context, err error) {
	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.CaptureException(err)
	}
	renderError(c, http.StatusInternalServerError, "Server Error", "Something went wrong. Please try again later.")
}

func renderError(c *gin.Context, status int, title, message string) {
	c.HTML(status, errorTemplate, gin.H{
		"Status":  status,
		"Title":   title,
		"Message": message,
	})
	c.Abort()
}

func TooManyRequests(c *gin.Context) {
	renderError(c, http.StatusTooManyRequests, "Too Many Requests", "Slow down and try again in a moment.")
}
