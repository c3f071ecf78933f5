package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/domain"
	"todoapp/internal/todo"
)

// ListTodos returns the collection, optionally filtered and sorted through
// the pipeline via query parameters.
func (h *Handler) ListTodos(c *gin.Context) {
	opts := todo.FilterOptions{
		Search:        c.Query("search"),
		Priority:      domain.Priority(c.Query("priority")),
		Category:      c.Query("category"),
		ShowCompleted: c.DefaultQuery("showCompleted", "true") != "false",
		DueDate:       todo.DueDateFilter(c.Query("dueDate")),
		Sort:          todo.Sort(c.Query("sort")),
	}

	todos := todo.Apply(h.Snapshot(), opts, h.now())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    todos,
		"count":   len(todos),
	})
}

// GetTodo returns a single todo by id.
func (h *Handler) GetTodo(c *gin.Context) {
	id := c.Param("id")
	for _, t := range h.Snapshot() {
		if t.ID == id {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
			return
		}
	}
	fail(c, &todo.NotFoundError{ID: id})
}

type createTodoRequest struct {
	Title    string          `json:"title"`
	Priority domain.Priority `json:"priority"`
	Category string          `json:"category"`
	Notes    string          `json:"notes"`
	DueDate  *string         `json:"dueDate"`
}

// CreateTodo adds a new todo from the request body.
func (h *Handler) CreateTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Title is required and must be a string")
		return
	}

	opts := todo.AddOptions{
		Priority: req.Priority,
		Category: req.Category,
		Notes:    req.Notes,
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			badRequest(c, "dueDate must be an RFC 3339 timestamp or YYYY-MM-DD date")
			return
		}
		opts.DueDate = &due
	}

	h.mu.Lock()
	next, created, err := h.engine.Add(h.history.Present(), req.Title, opts)
	if err != nil {
		h.mu.Unlock()
		fail(c, err)
		return
	}
	h.commit("add", next)
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Todo created successfully",
	})
}

type updateTodoRequest struct {
	Title     *string          `json:"title"`
	Completed *bool            `json:"completed"`
	Priority  *domain.Priority `json:"priority"`
	Category  *string          `json:"category"`
	Notes     *string          `json:"notes"`
	DueDate   *string          `json:"dueDate"`
}

// UpdateTodo merges the provided fields into the todo matching id. A missing
// id is 404: an update targeting a vanished todo is a caller bug.
func (h *Handler) UpdateTodo(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	patch := todo.Patch{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		Category:  req.Category,
		Notes:     req.Notes,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			due, err := parseDate(*req.DueDate)
			if err != nil {
				badRequest(c, "dueDate must be an RFC 3339 timestamp or YYYY-MM-DD date")
				return
			}
			patch.DueDate = &due
		}
	}

	h.mu.Lock()
	next, updated, err := h.engine.Update(h.history.Present(), c.Param("id"), patch)
	if err != nil {
		h.mu.Unlock()
		fail(c, err)
		return
	}
	h.commit("update", next)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Todo updated successfully",
	})
}

// ToggleTodo flips the completed flag. Toggling a missing id is a tolerated
// no-op so stale UI events never fail.
func (h *Handler) ToggleTodo(c *gin.Context) {
	h.mu.Lock()
	next, changed := h.engine.Toggle(h.history.Present(), c.Param("id"))
	if changed {
		h.commit("toggle", next)
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    next,
		"count":   len(next),
	})
}

// DeleteTodo removes a todo by id.
func (h *Handler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	next, removed, ok := h.engine.Remove(h.history.Present(), id)
	if !ok {
		h.mu.Unlock()
		fail(c, &todo.NotFoundError{ID: id})
		return
	}
	h.commit("delete", next)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    removed,
		"message": "Todo deleted successfully",
	})
}

// ClearCompleted removes every completed todo.
func (h *Handler) ClearCompleted(c *gin.Context) {
	h.mu.Lock()
	next, removed := h.engine.ClearCompleted(h.history.Present())
	if removed > 0 {
		h.commit("clearCompleted", next)
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": removed,
		"message":      formatDeleted(removed),
	})
}

func formatDeleted(n int) string {
	if n == 1 {
		return "1 completed todo deleted"
	}
	return strconv.Itoa(n) + " completed todos deleted"
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
