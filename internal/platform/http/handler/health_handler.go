// Package handler provides transport-agnostic platform HTTP handlers.
package handler

import "github.com/gin-gonic/gin"

// Health answers load-balancer and uptime probes.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
