package shift

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	{
		shifts.GET("", middleware.RequireCapability(middleware.CapViewRota), handler.List)
		shifts.GET("/:id", middleware.RequireCapability(middleware.CapViewRota), handler.GetById)
		shifts.POST("", middleware.RequireCapability(middleware.CapEditRota), handler.Create)
		shifts.PUT("/:id", middleware.RequireCapability(middleware.CapEditRota), handler.Update)
		shifts.DELETE("/:id", middleware.RequireCapability(middleware.CapEditRota), handler.Delete)
	}
}
