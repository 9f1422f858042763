package team

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", middleware.RequireCapability(middleware.CapViewRota), handler.GetAll)
		teams.GET("/:id", middleware.RequireCapability(middleware.CapViewRota), handler.GetById)
		teams.POST("", middleware.RequireAdmin(), handler.Create)
		teams.PUT("/:id", middleware.RequireAdmin(), handler.Update)
		teams.DELETE("/:id", middleware.RequireAdmin(), handler.Delete)
	}
}
