package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the calculator routes under /pricing.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/calculate", h.calculate)
	rg.GET("/catalog", h.catalog)
}

// RegisterAdmin attaches quote management routes under /pricing-quotes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.PATCH("/:id", h.setContacted)
}
