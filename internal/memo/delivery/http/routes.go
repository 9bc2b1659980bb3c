package http

import (
	"github.com/gin-gonic/gin"

	"memo-manager/internal/middleware"
	"memo-manager/internal/memo/render"
)

// RegisterRoutes maps the memo page and its form posts. Pages are never cached.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/", mw.NoStore(), h.Page)

	memos := rg.Group("/memos", mw.NoStore())
	{
		memos.POST("", h.Create)
		memos.POST("/edit", h.Update)
		memos.POST("/edit/cancel", h.Cancel)
		memos.POST(render.ActionPath[len("/memos"):], h.Action)
	}
}
