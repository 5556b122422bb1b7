package http

import (
	"github.com/gin-gonic/gin"

	"github.com/InternFinder-SIH/internfinder-backend/internal/applications/service"
)

// Register registers the application routes.
func Register(rg *gin.RouterGroup, svc *service.ApplicationService) {
	h := &Handler{svc: svc}

	rg.POST("/apply", h.Apply)
	rg.POST("/unsave", h.Unsave)
	rg.GET("/:userId", h.ListByUser)
	rg.GET("/stats/:userId", h.Stats)
}
