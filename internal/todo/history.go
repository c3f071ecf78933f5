package todo

import "todoapp/internal/domain"

// DefaultHistoryLimit bounds how many undo steps are retained.
const DefaultHistoryLimit = 50

// History keeps undo/redo snapshot stacks around the present collection.
// Pushing a new state clears the redo stack.
type History struct {
	past    [][]domain.Todo
	present []domain.Todo
	future  [][]domain.Todo
	limit   int
}

// NewHistory starts a history at the given state.
func NewHistory(initial []domain.Todo) *History {
	return &History{present: initial, limit: DefaultHistoryLimit}
}

// Present returns the current snapshot.
func (h *History) Present() []domain.Todo { return h.present }

// Push records a new present state and clears redo.
func (h *History) Push(next []domain.Todo) {
	h.past = append(h.past, h.present)
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.present = next
	h.future = nil
}

// Replace swaps the present state without touching the stacks. Used when the
// collection is loaded from storage at startup.
func (h *History) Replace(state []domain.Todo) {
	h.present = state
}

// Undo steps back one state. Returns false when there is nothing to undo.
func (h *History) Undo() ([]domain.Todo, bool) {
	if len(h.past) == 0 {
		return h.present, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([][]domain.Todo{h.present}, h.future...)
	h.present = prev
	return h.present, true
}

// Redo steps forward one state. Returns false when there is nothing to redo.
func (h *History) Redo() ([]domain.Todo, bool) {
	if len(h.future) == 0 {
		return h.present, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
	return h.present, true
}

// CanUndo reports whether an undo step exists.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo step exists.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
