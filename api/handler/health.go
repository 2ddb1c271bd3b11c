package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trymee/pricescout/models"
)

// StatsFunc reports the browser page pool's current state.
type StatsFunc func() models.PoolStats

// Health returns the handler for GET /health. It is intentionally free of
// any browser dependency so monitoring probes answer even while every page
// in the pool is busy.
func Health(stats StatsFunc, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "Online",
			Service:   "pricescout",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Pages:     stats(),
		})
	}
}
