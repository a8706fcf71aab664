package api

import (
	"github.com/labstack/echo"
	"github.com/nsyszr/festival/pkg/client"
	log "github.com/sirupsen/logrus"
)

// Handler contains all properties to serve the API
type Handler struct {
	exec     *Executor
	feed     client.Interface
	graphiql bool
}

// NewHandler create a new API handler. feed may be nil, the realtime events
// endpoint is unavailable then.
func NewHandler(exec *Executor, feed client.Interface, graphiql bool) *Handler {
	return &Handler{
		exec:     exec,
		feed:     feed,
		graphiql: graphiql,
	}
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register API routes")
	e.GET("/health", h.handleHealth)

	e.POST("/graphql", h.handlePostGraphQL)
	e.GET("/graphql", h.handleGetGraphQL)

	e.Any("/realtime-events", h.realtimeEventsHandler())
}

type errorResponse struct {
	Error string `json:"error"`
}
