package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.PATCH("/:id", h.setReplied)
	rg.PUT("/:id", h.setReplied)
}
