package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jordansepetys/AibaTS/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	indexHandler   *Index
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, indexHandler *Index) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		indexHandler:   indexHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupProjectRoutes(v1)
}

// setupProjectRoutes configures per-project index and query routes
func (rt *Router) setupProjectRoutes(g *echo.Group) {
	g.GET("/projects", rt.indexHandler.ListProjects)

	project := g.Group("/projects/:project")

	project.POST("/index", rt.indexHandler.Build)
	project.GET("/index", rt.meetingHandler.GetIndexStats)
	project.POST("/index/meetings", rt.indexHandler.UpdateMeeting)

	project.POST("/query", rt.meetingHandler.Ask)
	project.GET("/meetings/:id", rt.meetingHandler.GetMeeting)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
