package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/minutes-generator/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	minutesHandler *MinutesController
	archiveHandler *ArchiveController
	rateLimit      echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers. archiveHandler and
// rateLimit may be nil when the archive or Redis is disabled.
func NewRouter(cfg *config.Config, minutesHandler *MinutesController, archiveHandler *ArchiveController, rateLimit echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:            cfg,
		minutesHandler: minutesHandler,
		archiveHandler: archiveHandler,
		rateLimit:      rateLimit,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMinutesRoutes(v1)
	rt.setupArchiveRoutes(v1)
}

func (rt *Router) setupMinutesRoutes(g *echo.Group) {
	minutesGroup := g.Group("/minutes")

	var mw []echo.MiddlewareFunc
	if rt.rateLimit != nil {
		mw = append(mw, rt.rateLimit)
	}

	minutesGroup.POST("/generate", rt.minutesHandler.Generate, mw...)
}

func (rt *Router) setupArchiveRoutes(g *echo.Group) {
	if rt.archiveHandler == nil {
		return
	}

	archiveGroup := g.Group("/archive")
	archiveGroup.GET("/artifacts", rt.archiveHandler.List)
	archiveGroup.GET("/artifacts/url", rt.archiveHandler.DownloadURL)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
