package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/domain"
	"todoapp/internal/http/middleware"
	"todoapp/internal/logger"
	"todoapp/internal/storage"
	"todoapp/internal/todo"
	"todoapp/internal/ws"
)

// Handler owns one collection instance behind a mutex. The collection is an
// explicit field, not a package global, so tests can run several independent
// collections in-process.
type Handler struct {
	mu      sync.Mutex
	engine  *todo.Engine
	history *todo.History

	saver *storage.Autosaver // optional
	hub   *ws.Hub            // optional
	now   func() time.Time
}

// NewHandler wires a handler around an engine and an initial collection.
// saver and hub may be nil (tests, or a server without persistence/feed).
func NewHandler(engine *todo.Engine, initial []domain.Todo, saver *storage.Autosaver, hub *ws.Hub) *Handler {
	if initial == nil {
		initial = []domain.Todo{}
	}
	return &Handler{
		engine:  engine,
		history: todo.NewHistory(initial),
		saver:   saver,
		hub:     hub,
		now:     time.Now,
	}
}

// WithClock overrides the handler clock (filter/stats "today"). Test hook.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Snapshot returns the current collection.
func (h *Handler) Snapshot() []domain.Todo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.history.Present()
}

// SetNotified latches the notified flag on the given ids. Called by the due
// sweep; the state change is mirrored to storage but is not an undo step.
func (h *Handler) SetNotified(ids []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	next := h.engine.MarkNotified(h.history.Present(), ids)
	h.history.Replace(next)
	h.mirror("notify", next)
}

// commit records a mutation: history push, async save, feed broadcast.
// Caller holds mu.
func (h *Handler) commit(operation string, next []domain.Todo) {
	h.history.Push(next)
	h.mirror(operation, next)
}

// mirror propagates a new state without touching the undo history.
// Caller holds mu.
func (h *Handler) mirror(operation string, state []domain.Todo) {
	middleware.CountMutation(operation)
	if h.saver != nil {
		h.saver.Enqueue(state)
	}
	if h.hub != nil {
		h.hub.Broadcast(ws.NewChangedEvent(operation, len(state)))
	}
}

// fail maps the error taxonomy onto HTTP statuses.
func fail(c *gin.Context, err error) {
	var notFound *todo.NotFoundError
	var validation *todo.ValidationError
	var imported *todo.ImportError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Todo not found"})
	case errors.As(err, &imported):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": imported.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Msg})
	default:
		logger.Error("unexpected handler error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
