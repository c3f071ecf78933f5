package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/http/handlers"
	"todoapp/internal/http/middleware"
	"todoapp/internal/ws"
)

// RateLimitConfig carries the fixed-window limiter settings for the API group.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RegisterRoutes wires the REST facade and the websocket feed onto r.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, hub *ws.Hub, version string, rl RateLimitConfig) {
	r.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(version)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	if rl.Limit > 0 {
		api.Use(middleware.RedisRateLimit(rl.Limit, rl.Window))
	}

	api.GET("/health", healthHandler.Health)

	api.GET("/todos", h.ListTodos)
	api.POST("/todos", h.CreateTodo)
	api.DELETE("/todos", h.ClearCompleted)

	// Fixed paths before the :id wildcard.
	api.GET("/categories", h.Categories)

	api.GET("/todos/stats", h.Stats)
	api.GET("/todos/analytics", h.Analytics)
	api.GET("/todos/export", h.Export)
	api.POST("/todos/import", h.Import)
	api.POST("/todos/bulk", h.Bulk)
	api.POST("/todos/undo", h.Undo)
	api.POST("/todos/redo", h.Redo)

	api.GET("/todos/:id", h.GetTodo)
	api.PUT("/todos/:id", h.UpdateTodo)
	api.DELETE("/todos/:id", h.DeleteTodo)
	api.PATCH("/todos/:id/toggle", h.ToggleTodo)

	if hub != nil {
		r.GET("/ws", h.WS(hub))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Endpoint not found"})
	})
}
