package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.public)
}

func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.get)
	rg.PUT("", h.update)
}
