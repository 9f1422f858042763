package leavetype

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	types := r.Group("/leavetypes")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.RequireCapability(middleware.CapViewLeave), handler.GetAll)
		types.GET("/:id", middleware.RequireCapability(middleware.CapViewLeave), handler.GetById)
		types.POST("", middleware.RequireAdmin(), handler.Create)
		types.PUT("/:id", middleware.RequireAdmin(), handler.Update)
		types.DELETE("/:id", middleware.RequireAdmin(), handler.Delete)
	}
}
