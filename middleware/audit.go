package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIPMiddleware extracts and stores the real client IP for audit logging.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", clientIP(c))
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	// X-Forwarded-For may hold a chain, the first entry is the client
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xri := c.GetHeader("X-Real-Ip"); xri != "" && net.ParseIP(xri) != nil {
		return xri
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

// GetIPFromContext retrieves the stored client IP.
func GetIPFromContext(c *gin.Context) string {
	if ip, exists := c.Get("client_ip"); exists {
		if s, ok := ip.(string); ok {
			return s
		}
	}
	return clientIP(c)
}
