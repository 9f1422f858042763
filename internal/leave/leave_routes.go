package leave

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaverequests")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.RequireCapability(middleware.CapViewLeave), handler.List)
		leaves.GET("/:id", middleware.RequireCapability(middleware.CapViewLeave), handler.GetById)
		leaves.POST("", middleware.RequireCapability(middleware.CapEditLeave), handler.Create)
		leaves.PUT("/:id/status", middleware.RequireCapability(middleware.CapApproveLeave), handler.UpdateStatus)
		leaves.POST("/:id/cancel", middleware.RequireCapability(middleware.CapEditLeave), handler.Cancel)
	}
}
