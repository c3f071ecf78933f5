package todo

import (
	"math"
	"time"

	"todoapp/internal/domain"
)

// PriorityCounts breaks the collection down by priority. Todos without a
// priority are not counted here.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Stats are the derived counts for one collection snapshot.
type Stats struct {
	Total                int            `json:"total"`
	Completed            int            `json:"completed"`
	Pending              int            `json:"pending"`
	Overdue              int            `json:"overdue"`
	CompletionPercentage int            `json:"completionPercentage"`
	ByPriority           PriorityCounts `json:"byPriority"`
	ByCategory           map[string]int `json:"byCategory"`
}

// Compute reduces a snapshot to its stats. A todo is overdue when its due date
// falls strictly before today and it is not completed; a completed-but-late
// todo is never overdue.
func Compute(todos []domain.Todo, now time.Time) Stats {
	stats := Stats{
		Total:      len(todos),
		ByCategory: map[string]int{},
	}
	today := startOfDay(now)

	for _, t := range todos {
		if t.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}

		if t.DueDate != nil && !t.Completed && startOfDay(*t.DueDate).Before(today) {
			stats.Overdue++
		}

		switch t.Priority {
		case domain.PriorityHigh:
			stats.ByPriority.High++
		case domain.PriorityMedium:
			stats.ByPriority.Medium++
		case domain.PriorityLow:
			stats.ByPriority.Low++
		}

		if t.Category != "" {
			stats.ByCategory[t.Category]++
		}
	}

	stats.CompletionPercentage = percentage(stats.Completed, stats.Total)
	return stats
}

// Analytics extends Stats with productivity-oriented figures.
type Analytics struct {
	Total                   int     `json:"total"`
	Completed               int     `json:"completed"`
	Active                  int     `json:"active"`
	CompletionPercentage    int     `json:"completionPercentage"`
	AverageCompletionMillis *int64  `json:"averageCompletionMillis"`
	CreatedToday            int     `json:"createdToday"`
	CompletedToday          int     `json:"completedToday"`
	MostProductiveDay       *string `json:"mostProductiveDay"`
}

// ComputeAnalytics reduces a snapshot to productivity figures. Averages are
// nil when no completed todo carries a completedAt stamp.
func ComputeAnalytics(todos []domain.Todo, now time.Time) Analytics {
	a := Analytics{Total: len(todos)}
	today := startOfDay(now)

	var totalCompletion time.Duration
	var timed int
	byWeekday := map[time.Weekday]int{}

	for _, t := range todos {
		if t.Completed {
			a.Completed++
		}
		if !t.CreatedAt.Before(today) {
			a.CreatedToday++
		}
		if t.CompletedAt != nil {
			if !t.CompletedAt.Before(today) {
				a.CompletedToday++
			}
			totalCompletion += t.CompletedAt.Sub(t.CreatedAt)
			timed++
			byWeekday[t.CompletedAt.Weekday()]++
		}
	}

	a.Active = a.Total - a.Completed
	a.CompletionPercentage = percentage(a.Completed, a.Total)

	if timed > 0 {
		avg := (totalCompletion / time.Duration(timed)).Milliseconds()
		a.AverageCompletionMillis = &avg
	}

	best, bestCount := time.Weekday(-1), 0
	for day, count := range byWeekday {
		if count > bestCount || (count == bestCount && best >= 0 && day < best) {
			best, bestCount = day, count
		}
	}
	if bestCount > 0 {
		name := best.String()
		a.MostProductiveDay = &name
	}
	return a
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
