package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/todo"
)

// Export renders the collection in the interchange format selected by the
// format query parameter (json, the default, or csv).
func (h *Handler) Export(c *gin.Context) {
	snapshot := h.Snapshot()

	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err := todo.ExportJSON(snapshot, h.now())
		if err != nil {
			fail(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="todos.json"`)
		c.Data(http.StatusOK, "application/json", data)
	case "csv":
		data, err := todo.ExportCSV(snapshot)
		if err != nil {
			fail(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="todos.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	default:
		badRequest(c, "format must be json or csv")
	}
}

// Import replaces the collection with the todos from a JSON envelope. The
// previous state stays one undo step away.
func (h *Handler) Import(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 8<<20))
	if err != nil {
		badRequest(c, "Cannot read request body")
		return
	}

	todos, err := todo.ImportJSON(body)
	if err != nil {
		fail(c, err)
		return
	}

	h.mu.Lock()
	h.commit("import", todos)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(todos),
		"message": "Todos imported successfully",
	})
}
