package handlers

import (
	"net/http"
	"server/db"

	"github.com/gin-gonic/gin"
)

// Health reports whether the process and its store are reachable.
func Health(c *gin.Context) {
	sqlDB, err := db.Instance.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
