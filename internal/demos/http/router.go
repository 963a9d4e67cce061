package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/resume-analyze", h.analyzeResume)
}

func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
}
