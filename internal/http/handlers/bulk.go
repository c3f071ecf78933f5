package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/domain"
	"todoapp/internal/todo"
)

type bulkRequest struct {
	Action    string            `json:"action"`
	IDs       []string          `json:"ids"`
	Completed *bool             `json:"completed"`
	Titles    map[string]string `json:"titles"`
}

// Bulk applies one operation across a set of ids. Partial failure is normal:
// the response always carries a result summary and never a 4xx for individual
// misses.
func (h *Handler) Bulk(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	h.mu.Lock()
	current := h.history.Present()

	var next []domain.Todo
	var result todo.BulkResult
	switch req.Action {
	case "toggle":
		completed := true
		if req.Completed != nil {
			completed = *req.Completed
		}
		next, result = h.engine.BulkToggle(current, req.IDs, completed)
	case "delete":
		next, result = h.engine.BulkDelete(current, req.IDs)
	case "complete":
		next, result = h.engine.BulkComplete(current)
	case "reset":
		next, result = h.engine.BulkReset(current)
	case "duplicate":
		next, result = h.engine.BulkDuplicate(current, req.IDs)
	case "rename":
		next, result = h.engine.BulkRename(current, req.Titles)
	default:
		h.mu.Unlock()
		badRequest(c, "Unknown bulk action")
		return
	}

	if result.SuccessCount > 0 {
		h.commit("bulk."+req.Action, next)
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
