package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/domain"
	"todoapp/internal/todo"
)

// Stats returns the derived counts for the current snapshot.
func (h *Handler) Stats(c *gin.Context) {
	stats := todo.Compute(h.Snapshot(), h.now())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// Analytics returns the productivity figures for the current snapshot.
func (h *Handler) Analytics(c *gin.Context) {
	analytics := todo.ComputeAnalytics(h.Snapshot(), h.now())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": analytics})
}

// Categories returns the suggested defaults plus every category in use.
// Categories are free-form; the defaults are advisory.
func (h *Handler) Categories(c *gin.Context) {
	seen := make(map[string]struct{}, len(domain.DefaultCategories))
	categories := make([]string, 0, len(domain.DefaultCategories))
	for _, name := range domain.DefaultCategories {
		seen[name] = struct{}{}
		categories = append(categories, name)
	}
	for _, t := range h.Snapshot() {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; !ok {
			seen[t.Category] = struct{}{}
			categories = append(categories, t.Category)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}
