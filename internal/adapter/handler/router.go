package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/summary-share/internal/adapter/dto/common"
	"github.com/johnquangdev/summary-share/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	summarizeHandler *SummarizeHandler
	shareHandler     *ShareHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summarizeHandler *SummarizeHandler, shareHandler *ShareHandler) *Router {
	return &Router{
		cfg:              cfg,
		summarizeHandler: summarizeHandler,
		shareHandler:     shareHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	v1.POST("/summarize", rt.summarizeHandler.Summarize)
	v1.POST("/share", rt.shareHandler.Share)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
