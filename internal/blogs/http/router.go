package http

import "github.com/gin-gonic/gin"

// RegisterPublic exposes published posts under /blogs.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.listPublished)
	rg.GET("/:slug", h.read)
}

// RegisterAdmin exposes every post, drafts included, under /admin/blogs.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.listAll)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
