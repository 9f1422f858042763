package auth

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		authGroup.POST("/register", middleware.AuthMiddleware(), middleware.RequireAdmin(), middleware.RateLimitByUser(2, 5), handler.Register)
		authGroup.PUT("/password", middleware.AuthMiddleware(), middleware.RateLimitByUser(0.5, 2), handler.ChangePassword)
	}
}
