package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Undo steps the collection back one mutation.
func (h *Handler) Undo(c *gin.Context) {
	h.mu.Lock()
	state, ok := h.history.Undo()
	if ok {
		h.mirror("undo", state)
	}
	h.mu.Unlock()

	if !ok {
		badRequest(c, "Nothing to undo")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    state,
		"count":   len(state),
		"message": "Undo applied",
	})
}

// Redo steps the collection forward one undone mutation.
func (h *Handler) Redo(c *gin.Context) {
	h.mu.Lock()
	state, ok := h.history.Redo()
	if ok {
		h.mirror("redo", state)
	}
	h.mu.Unlock()

	if !ok {
		badRequest(c, "Nothing to redo")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    state,
		"count":   len(state),
		"message": "Redo applied",
	})
}
