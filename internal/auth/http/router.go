package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.RegisterUser)
	rg.POST("/login", h.Login)
	rg.POST("/google", h.GoogleLogin)
	rg.GET("/logout", h.Logout)
}
