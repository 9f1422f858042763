package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/BenitoJD/ROTA-API/internal/auth/errors"
	"github.com/BenitoJD/ROTA-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Capability claim names carried in the token and checked by RequireCapability.
const (
	CapEditRota     = "can_edit_rota"
	CapEditLeave    = "can_edit_leave"
	CapApproveLeave = "can_approve_leave"
	CapViewRota     = "can_view_rota"
	CapViewLeave    = "can_view_leave"
)

var capabilityClaims = []string{CapEditRota, CapEditLeave, CapApproveLeave, CapViewRota, CapViewLeave}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok || userID <= 0 {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		// employee_id stays zero for users without an employee link
		employeeID, _ := claims["employee_id"].(float64)
		isAdmin, _ := claims["is_admin"].(bool)

		c.Set("user_id", uint(userID))
		c.Set("employee_id", uint(employeeID))
		c.Set("is_admin", isAdmin)
		for _, capName := range capabilityClaims {
			v, _ := claims[capName].(bool)
			c.Set(capName, v)
		}

		c.Next()
	}
}

// RequireAdmin gates routes reserved for privileged callers.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Administrator access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCapability gates a route on a role capability flag; admins always pass.
func RequireCapability(capName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool("is_admin") || c.GetBool(capName) {
			c.Next()
			return
		}
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
		c.Abort()
	}
}
