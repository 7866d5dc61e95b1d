package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client address, preferring X-Real-IP and then the
// first valid entry of X-Forwarded-For before falling back to gin's ClientIP.
func GetRealIP(c *gin.Context) string {
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); isValidIP(realIP) {
		return realIP
	}

	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		for _, part := range strings.Split(forwarded, ",") {
			if ip := strings.TrimSpace(part); isValidIP(ip) {
				return ip
			}
		}
	}

	return c.ClientIP()
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}
