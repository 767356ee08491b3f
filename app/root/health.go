// Package root contains the endpoints that don't belong to a resource
package root

import (
	"bitwise74/notes-api/internal"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health reports process liveness and whether the database answers a ping
func Health(c *gin.Context, d *internal.Deps) {
	dbStatus := "Connected"

	sqlDB, err := d.DB.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbStatus = "Disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startedAt).Round(time.Second).Seconds(),
		"database":  dbStatus,
	})
}
