package todo

import (
	"time"

	"github.com/google/uuid"

	"todoapp/internal/domain"
)

// InsertOrder controls where Add places new todos.
type InsertOrder string

const (
	// InsertPrepend puts new todos first (newest-first, the UI default).
	InsertPrepend InsertOrder = "prepend"
	// InsertAppend puts new todos last.
	InsertAppend InsertOrder = "append"
)

// Engine performs all collection mutations. Every operation takes the current
// snapshot and returns a new one; inputs are never modified. The clock and id
// generator are injectable for deterministic tests.
type Engine struct {
	order InsertOrder
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc replaces the id generator.
func WithIDFunc(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithInsertOrder sets where Add and BulkDuplicate place new todos.
func WithInsertOrder(order InsertOrder) Option {
	return func(e *Engine) { e.order = order }
}

// NewEngine returns an engine with prepend order, wall clock, and uuid ids.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		order: InsertPrepend,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddOptions carries the optional fields of a new todo.
type AddOptions struct {
	Priority domain.Priority
	Category string
	Notes    string
	DueDate  *time.Time
}

// Add validates and sanitizes the title, assigns a fresh id and createdAt, and
// inserts the new todo per the configured order. The input snapshot is left
// untouched.
func (e *Engine) Add(current []domain.Todo, title string, opts AddOptions) ([]domain.Todo, domain.Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, domain.Todo{}, err
	}
	if !opts.Priority.Valid() {
		return nil, domain.Todo{}, validationErrorf("unknown priority %q", opts.Priority)
	}

	t := domain.Todo{
		ID:        e.newID(),
		Title:     SanitizeTitle(title),
		Completed: false,
		CreatedAt: e.now(),
		Priority:  opts.Priority,
		Category:  opts.Category,
		Notes:     opts.Notes,
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		t.DueDate = &due
	}

	next := make([]domain.Todo, 0, len(current)+1)
	if e.order == InsertAppend {
		next = append(next, current...)
		next = append(next, t)
	} else {
		next = append(next, t)
		next = append(next, current...)
	}
	return next, t, nil
}

// setCompleted is the single transition owning the completedAt rule: completing
// stamps completedAt (kept if already set), un-completing clears it.
func setCompleted(t domain.Todo, completed bool, now time.Time) domain.Todo {
	t.Completed = completed
	if completed {
		if t.CompletedAt == nil {
			at := now
			t.CompletedAt = &at
		}
	} else {
		t.CompletedAt = nil
	}
	return t
}

// Toggle flips the completed flag of the todo matching id. A missing id is a
// tolerated no-op: stale UI events (double clicks) must not fail. The bool
// reports whether anything changed.
func (e *Engine) Toggle(current []domain.Todo, id string) ([]domain.Todo, bool) {
	idx := indexOf(current, id)
	if idx < 0 {
		return current, false
	}
	next := domain.CloneAll(current)
	next[idx] = setCompleted(next[idx], !next[idx].Completed, e.now())
	return next, true
}

// Patch carries the fields Update may change. Nil pointers mean "leave as is".
type Patch struct {
	Title     *string
	Completed *bool
	Priority  *domain.Priority
	Category  *string
	Notes     *string
	DueDate   *time.Time
	// ClearDueDate removes the due date. DueDate wins if both are set.
	ClearDueDate bool
}

// Update merges the patch into the todo matching id. Unlike Toggle, a missing
// id returns NotFoundError: an explicit update targeting a vanished todo is a
// caller bug worth surfacing.
func (e *Engine) Update(current []domain.Todo, id string, patch Patch) ([]domain.Todo, domain.Todo, error) {
	idx := indexOf(current, id)
	if idx < 0 {
		return nil, domain.Todo{}, &NotFoundError{ID: id}
	}

	if patch.Title != nil {
		if err := ValidateTitle(*patch.Title); err != nil {
			return nil, domain.Todo{}, err
		}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.Todo{}, validationErrorf("unknown priority %q", *patch.Priority)
	}

	next := domain.CloneAll(current)
	t := next[idx]
	if patch.Title != nil {
		t.Title = SanitizeTitle(*patch.Title)
	}
	if patch.Completed != nil {
		t = setCompleted(t, *patch.Completed, e.now())
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		t.DueDate = &due
		t.Notified = false
	} else if patch.ClearDueDate {
		t.DueDate = nil
		t.Notified = false
	}
	next[idx] = t
	return next, t, nil
}

// Remove returns the collection without the todo matching id. Removing an
// absent id is a no-op; the bool reports whether anything was removed.
func (e *Engine) Remove(current []domain.Todo, id string) ([]domain.Todo, domain.Todo, bool) {
	idx := indexOf(current, id)
	if idx < 0 {
		return current, domain.Todo{}, false
	}
	removed := current[idx]
	next := make([]domain.Todo, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	return next, removed, true
}

// ClearCompleted removes every completed todo and reports how many went away.
func (e *Engine) ClearCompleted(current []domain.Todo) ([]domain.Todo, int) {
	next := make([]domain.Todo, 0, len(current))
	for _, t := range current {
		if !t.Completed {
			next = append(next, t)
		}
	}
	return next, len(current) - len(next)
}

// MarkNotified sets the notified latch on the given ids. Used by the due-date
// sweep so a todo is announced once per state.
func (e *Engine) MarkNotified(current []domain.Todo, ids []string) []domain.Todo {
	if len(ids) == 0 {
		return current
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	next := domain.CloneAll(current)
	for i := range next {
		if _, ok := set[next[i].ID]; ok {
			next[i].Notified = true
		}
	}
	return next
}

func indexOf(todos []domain.Todo, id string) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
