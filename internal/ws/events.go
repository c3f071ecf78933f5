package ws

import "todoapp/internal/todo"

// Event types carried on the feed.
const (
	EventTodosChanged = "todos.changed"
	EventTodoDue      = "todo.due"
	EventTodoOverdue  = "todo.overdue"
)

// ChangedEvent announces a collection mutation.
type ChangedEvent struct {
	Type      string `json:"type"`
	Operation string `json:"operation"`
	Count     int    `json:"count"`
}

// NewChangedEvent builds the event for one mutation. Count is the collection
// size after the mutation.
func NewChangedEvent(operation string, count int) ChangedEvent {
	return ChangedEvent{Type: EventTodosChanged, Operation: operation, Count: count}
}

// DueEvent announces a todo that is due today or overdue.
type DueEvent struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewDueEvent converts a sweep notification into a feed event.
func NewDueEvent(n todo.Notification) DueEvent {
	t := EventTodoDue
	if n.State == todo.DueStateOverdue {
		t = EventTodoOverdue
	}
	return DueEvent{Type: t, ID: n.ID, Title: n.Title}
}
