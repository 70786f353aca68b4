package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles GET /.
func HomeHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// NewHealthHandler reports the latest dependency snapshot: 200 when healthy, 503 otherwise.
func NewHealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
