package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

type AuthenticatedUser struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Role      types.Role `json:"role"`
}

// Routes reachable without a session token.
var publicPaths = map[string]bool{
	"/users/login":  true,
	"/users/signup": true,
	"/status":       true,
}

func isPublicPath(path string) bool {
	return publicPaths[path] || strings.HasPrefix(path, "/api-docs")
}

// AuthMiddleware gates every route outside the public allowlist. It reads
// the session token from the cookie, verifies it and attaches the
// authenticated identity to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if isPublicPath(ctx.Request.URL.Path) {
			ctx.Next()
			return
		}

		tokenString, err := ctx.Cookie(types.TokenCookieName)

		if err != nil || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "errorMessage": "Authentication token is required"})
			return
		}

		claims, err := auth.VerifyJWT(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "errorMessage": "Invalid or expired token"})
			return
		}

		var user models.User

		if err := db.DB.Where("email = ?", claims.Email).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "errorMessage": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.Role,
		})
		ctx.Next()
	}
}
