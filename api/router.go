package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trymee/pricescout/api/handler"
	"github.com/trymee/pricescout/api/middleware"
	"github.com/trymee/pricescout/config"
	"github.com/trymee/pricescout/extractor"
	"github.com/trymee/pricescout/scraper"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain: Recovery → Logger → CORS. The health endpoint shares the
// chain since there is no auth to keep it outside of.
func NewRouter(rend scraper.Renderer, ext *extractor.Extractor, cfg *config.Config, stats handler.StatsFunc, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.GET("/health", handler.Health(stats, startTime))
	r.POST("/api/scrape-buyhatke", handler.Scrape(rend, ext))

	return r
}
