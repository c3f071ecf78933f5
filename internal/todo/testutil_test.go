package todo

import (
	"fmt"
	"time"

	"todoapp/internal/domain"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// testEngine returns an engine with a fixed clock and sequential ids.
func testEngine(opts ...Option) *Engine {
	seq := 0
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDFunc(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	}
	return NewEngine(append(base, opts...)...)
}

func mustAdd(e *Engine, current []domain.Todo, title string, opts AddOptions) []domain.Todo {
	next, _, err := e.Add(current, title, opts)
	if err != nil {
		panic(err)
	}
	return next
}

func daysFromNow(days int) *time.Time {
	t := testNow.AddDate(0, 0, days)
	return &t
}

func titles(todos []domain.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.Title
	}
	return out
}
