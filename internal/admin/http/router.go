package http

import "github.com/gin-gonic/gin"

// RegisterSession attaches the ungated login and logout routes. loginGuard
// throttles login attempts.
func (h *Handler) RegisterSession(rg *gin.RouterGroup, loginGuard gin.HandlerFunc) {
	rg.POST("/login", loginGuard, h.login)
	rg.POST("/logout", h.logout)
}

// RegisterGated attaches routes that sit behind auth.RequireAdmin.
func (h *Handler) RegisterGated(rg *gin.RouterGroup) {
	rg.GET("/check", h.check)
	rg.GET("/dashboard", h.dashboard)
}
