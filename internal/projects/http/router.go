package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read and click routes under /projects.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("/:id/click", h.click)
}

// RegisterAdmin attaches project CRUD under /admin/projects.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
