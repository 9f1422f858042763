package employee

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RequireCapability(middleware.CapViewRota), handler.GetAll)
		employees.GET("/:id", middleware.RequireCapability(middleware.CapViewRota), handler.GetById)
		employees.POST("", middleware.RequireAdmin(), handler.Create)
		employees.PUT("/:id", middleware.RequireAdmin(), handler.Update)
		employees.DELETE("/:id", middleware.RequireAdmin(), handler.Delete)
	}
}
