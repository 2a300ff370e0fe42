package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware returns a gin middleware that enforces rate limits per client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		limitType := getRouteType(c.FullPath())

		result, err := limiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// Fail open if Redis is unavailable
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":      "error",
				"status_code": http.StatusTooManyRequests,
				"message":     "Rate limit exceeded. Please try again later.",
				"errors": gin.H{
					"retry_after": result.ResetTime,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getRouteType classifies the request path into a rate limit class
func getRouteType(path string) RateLimitType {
	switch {
	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth
	case strings.Contains(path, "/bookings"):
		return RateLimitTypeBooking
	case strings.Contains(path, "/movies"), strings.Contains(path, "/showtimes"):
		return RateLimitTypePublic
	default:
		return RateLimitTypeDefault
	}
}

// getClientIP extracts the real client IP, honoring proxy headers
func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}

	ip := c.Request.RemoteAddr
	if colonIndex := strings.LastIndex(ip, ":"); colonIndex != -1 {
		ip = ip[:colonIndex]
	}
	return ip
}
