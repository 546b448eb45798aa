package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"innsync/internal/infra/config"
	"innsync/internal/infra/obs"
)

type InventoryHTTP interface {
	Get(c *gin.Context)
}

type ChartHTTP interface {
	Get(c *gin.Context)
	Occupancy(c *gin.Context)
}

type SyncHTTP interface {
	Trigger(c *gin.Context)
}

type Handlers struct {
	Inventory InventoryHTTP
	Chart     ChartHTTP
	Sync      SyncHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Inventory != nil {
		api.GET("/properties/:id/inventory", h.Inventory.Get)
	}
	if h.Chart != nil {
		api.GET("/properties/:id/tape-chart", h.Chart.Get)
		api.GET("/properties/:id/occupancy", h.Chart.Occupancy)
	}
	if h.Sync != nil {
		api.POST("/properties/:id/sync/:channel", h.Sync.Trigger)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
