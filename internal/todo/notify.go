package todo

import (
	"time"

	"todoapp/internal/domain"
)

// DueState classifies a todo picked up by the due-date sweep.
type DueState string

const (
	DueStateToday   DueState = "due"
	DueStateOverdue DueState = "overdue"
)

// Notification describes one todo that is due today or overdue and has not
// been announced yet.
type Notification struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	State DueState `json:"state"`
}

// CheckDue sweeps the snapshot for todos due today or overdue. Completed todos
// and todos already announced (notified latch) are skipped. The caller is
// expected to mark the returned ids notified so each state fires once.
func CheckDue(todos []domain.Todo, now time.Time) []Notification {
	today := startOfDay(now)

	var due []Notification
	for _, t := range todos {
		if t.Completed || t.Notified || t.DueDate == nil {
			continue
		}
		d := startOfDay(*t.DueDate)
		switch {
		case d.Equal(today):
			due = append(due, Notification{ID: t.ID, Title: t.Title, State: DueStateToday})
		case d.Before(today):
			due = append(due, Notification{ID: t.ID, Title: t.Title, State: DueStateOverdue})
		}
	}
	return due
}
