package user

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		users.GET("", handler.List)
		users.PUT("/:id/role", handler.SetRole)
		users.PUT("/:id/active", handler.SetActive)
	}

	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		roles.GET("", handler.ListRoles)
	}
}
