package domain

import "time"

// Priority levels a todo can carry. Empty means no priority assigned.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority values.
// The empty priority is valid (unset).
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DefaultCategories are suggested category names. Categories are free-form;
// this list is advisory only.
var DefaultCategories = []string{
	"Work",
	"Personal",
	"Shopping",
	"Health",
	"Finance",
	"Learning",
	"Other",
}

// Todo is a single task record.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Category    string     `json:"category,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notified    bool       `json:"notified,omitempty"`
}

// Clone returns a copy of the todo with its own pointer fields.
func (t Todo) Clone() Todo {
	c := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return c
}

// CloneAll deep-copies a collection snapshot.
func CloneAll(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	out := make([]Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	return out
}
