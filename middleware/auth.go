package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/divinedarshan/divine-darshan-backend/config"
)

// Role names used across the API.
const (
	RoleUser          = "user"
	RoleAdmin         = "admin"
	RoleTempleManager = "temple_manager"
)

// AuthMiddleware verifies the bearer token and puts the minimal subject
// (id, email, role) into the request context. It fails closed: no handler
// runs and no data is touched on a missing or invalid credential. The token
// itself carries everything authorization needs, so no database round-trip
// happens here.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid Authorization header")
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid claims")
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			abortUnauthorized(c, "user_id missing in token")
			return
		}
		role, ok := claims["role"].(string)
		if !ok {
			abortUnauthorized(c, "role missing in token")
			return
		}
		email, _ := claims["email"].(string)

		c.Set("user_id", uint(userIDFloat))
		c.Set("user_role", role)
		c.Set("user_email", email)

		if templeIDFloat, ok := claims["assigned_temple_id"].(float64); ok {
			c.Set("assigned_temple_id", uint(templeIDFloat))
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
}

// UserID returns the authenticated subject id set by AuthMiddleware.
func UserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// UserRole returns the authenticated subject role set by AuthMiddleware.
func UserRole(c *gin.Context) string {
	return c.GetString("user_role")
}

// UserEmail returns the authenticated subject email set by AuthMiddleware.
func UserEmail(c *gin.Context) string {
	return c.GetString("user_email")
}

// AssignedTempleID returns the temple a manager is scoped to, if any.
func AssignedTempleID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("assigned_temple_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
