package todo

import (
	"sort"
	"strings"
	"time"

	"todoapp/internal/domain"
)

// DueDateFilter selects todos by how their due date relates to today.
type DueDateFilter string

const (
	DueToday   DueDateFilter = "today"
	DueWeek    DueDateFilter = "week"
	DueOverdue DueDateFilter = "overdue"
)

// Sort orders for the pipeline. Newest is input order (the collection is
// already newest-first under the prepend convention).
type Sort string

const (
	SortNewest         Sort = "newest"
	SortOldest         Sort = "oldest"
	SortCompletedFirst Sort = "completedFirst"
	SortActiveFirst    Sort = "activeFirst"
	SortByPriority     Sort = "byPriority"
	SortByDueDate      Sort = "byDueDate"
)

// FilterOptions enumerates the pipeline knobs. Zero values disable each
// filter, except ShowCompleted where false hides completed todos.
type FilterOptions struct {
	Search        string
	Priority      domain.Priority
	Category      string
	ShowCompleted bool
	DueDate       DueDateFilter
	Sort          Sort
}

// Apply runs the filter pipeline over a snapshot: search, priority, category,
// completion and due-date predicates AND-composed in that order, then a stable
// sort. The input is never modified.
func Apply(todos []domain.Todo, opts FilterOptions, now time.Time) []domain.Todo {
	result := make([]domain.Todo, 0, len(todos))
	result = append(result, todos...)

	result = searchTodos(result, opts.Search)
	if opts.Priority != "" {
		result = filterFunc(result, func(t domain.Todo) bool { return t.Priority == opts.Priority })
	}
	if opts.Category != "" {
		result = filterFunc(result, func(t domain.Todo) bool { return t.Category == opts.Category })
	}
	if !opts.ShowCompleted {
		result = filterFunc(result, func(t domain.Todo) bool { return !t.Completed })
	}
	result = filterByDueDate(result, opts.DueDate, now)

	sortTodos(result, opts.Sort)
	return result
}

func searchTodos(todos []domain.Todo, term string) []domain.Todo {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return todos
	}
	return filterFunc(todos, func(t domain.Todo) bool {
		if strings.Contains(strings.ToLower(t.Title), term) {
			return true
		}
		return t.Notes != "" && strings.Contains(strings.ToLower(t.Notes), term)
	})
}

func filterByDueDate(todos []domain.Todo, filter DueDateFilter, now time.Time) []domain.Todo {
	if filter == "" {
		return todos
	}
	today := startOfDay(now)
	weekEnd := today.AddDate(0, 0, 7)

	return filterFunc(todos, func(t domain.Todo) bool {
		if t.DueDate == nil {
			return false
		}
		due := startOfDay(*t.DueDate)
		switch filter {
		case DueToday:
			return due.Equal(today)
		case DueWeek:
			return !due.Before(today) && !due.After(weekEnd)
		case DueOverdue:
			return due.Before(today) && !t.Completed
		}
		return true
	})
}

func filterFunc(todos []domain.Todo, keep func(domain.Todo) bool) []domain.Todo {
	out := todos[:0]
	for _, t := range todos {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// sortTodos sorts in place. Stability is a correctness requirement: ties must
// preserve prior relative order.
func sortTodos(todos []domain.Todo, order Sort) {
	switch order {
	case SortOldest:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].CreatedAt.Before(todos[j].CreatedAt)
		})
	case SortCompletedFirst:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].Completed && !todos[j].Completed
		})
	case SortActiveFirst:
		sort.SliceStable(todos, func(i, j int) bool {
			return !todos[i].Completed && todos[j].Completed
		})
	case SortByPriority:
		sort.SliceStable(todos, func(i, j int) bool {
			return priorityRank(todos[i].Priority) < priorityRank(todos[j].Priority)
		})
	case SortByDueDate:
		sort.SliceStable(todos, func(i, j int) bool {
			a, b := todos[i].DueDate, todos[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	}
	// SortNewest (and "") keep the input order.
}

func priorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 0
	case domain.PriorityMedium:
		return 1
	case domain.PriorityLow:
		return 2
	}
	return 3
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
