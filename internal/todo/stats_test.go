package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/domain"
)

func TestComputeEmptyCollection(t *testing.T) {
	stats := Compute(nil, testNow)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.CompletionPercentage, "never divide by zero")
	assert.Empty(t, stats.ByCategory)
}

func TestComputeCounts(t *testing.T) {
	e := testEngine()
	c := mustAdd(e, nil, "a", AddOptions{Priority: domain.PriorityHigh, Category: "Work"})
	c = mustAdd(e, c, "b", AddOptions{Priority: domain.PriorityHigh, Category: "Work"})
	c = mustAdd(e, c, "c", AddOptions{Priority: domain.PriorityLow, Category: "Home"})
	c = mustAdd(e, c, "d", AddOptions{})
	c, _ = e.Toggle(c, "id-1")

	stats := Compute(c, testNow)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 2, stats.ByPriority.High)
	assert.Equal(t, 0, stats.ByPriority.Medium)
	assert.Equal(t, 1, stats.ByPriority.Low)
	assert.Equal(t, map[string]int{"Work": 2, "Home": 1}, stats.ByCategory)
}

func TestCompletionPercentageScenario(t *testing.T) {
	// add 4 todos, complete 2 → 50%.
	e := testEngine()
	var c []domain.Todo
	for _, title := range []string{"a", "b", "c", "d"} {
		c = mustAdd(e, c, title, AddOptions{})
	}
	c, _ = e.Toggle(c, "id-1")
	c, _ = e.Toggle(c, "id-2")

	stats := Compute(c, testNow)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 50, stats.CompletionPercentage)
}

func TestCompletionPercentageRounds(t *testing.T) {
	e := testEngine()
	var c []domain.Todo
	for _, title := range []string{"a", "b", "c"} {
		c = mustAdd(e, c, title, AddOptions{})
	}
	c, _ = e.Toggle(c, "id-1")

	assert.Equal(t, 33, Compute(c, testNow).CompletionPercentage)

	c, _ = e.Toggle(c, "id-2")
	assert.Equal(t, 67, Compute(c, testNow).CompletionPercentage)
}

func TestOverdueScenario(t *testing.T) {
	// overdue yesterday while pending; completing it clears overdue.
	e := testEngine()
	c := mustAdd(e, nil, "late", AddOptions{DueDate: daysFromNow(-1)})

	assert.Equal(t, 1, Compute(c, testNow).Overdue)

	c, _ = e.Toggle(c, "id-1")
	assert.Equal(t, 0, Compute(c, testNow).Overdue)
}

func TestOverdueUsesDayGranularity(t *testing.T) {
	e := testEngine()
	// Due earlier today is not overdue; it is due today.
	earlier := testNow.Add(-2 * time.Hour)
	c := mustAdd(e, nil, "today", AddOptions{DueDate: &earlier})

	assert.Equal(t, 0, Compute(c, testNow).Overdue)
}

func TestComputeAnalytics(t *testing.T) {
	e := testEngine()
	c := mustAdd(e, nil, "a", AddOptions{})
	c = mustAdd(e, c, "b", AddOptions{})

	// Complete one an hour after creation.
	later := testNow.Add(time.Hour)
	e2 := testEngine(WithClock(func() time.Time { return later }))
	c, _ = e2.Toggle(c, "id-1")

	a := ComputeAnalytics(c, later)
	assert.Equal(t, 2, a.Total)
	assert.Equal(t, 1, a.Completed)
	assert.Equal(t, 1, a.Active)
	assert.Equal(t, 50, a.CompletionPercentage)
	assert.Equal(t, 2, a.CreatedToday)
	assert.Equal(t, 1, a.CompletedToday)
	require.NotNil(t, a.AverageCompletionMillis)
	assert.Equal(t, time.Hour.Milliseconds(), *a.AverageCompletionMillis)
	require.NotNil(t, a.MostProductiveDay)
	assert.Equal(t, later.Weekday().String(), *a.MostProductiveDay)
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	a := ComputeAnalytics(nil, testNow)
	assert.Equal(t, 0, a.CompletionPercentage)
	assert.Nil(t, a.AverageCompletionMillis)
	assert.Nil(t, a.MostProductiveDay)
}
