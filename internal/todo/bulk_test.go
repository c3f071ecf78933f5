package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/domain"
)

func bulkFixture(e *Engine) []domain.Todo {
	c := mustAdd(e, nil, "a", AddOptions{}) // id-1
	c = mustAdd(e, c, "b", AddOptions{})    // id-2
	c = mustAdd(e, c, "c", AddOptions{})    // id-3
	return c
}

func TestBulkToggle(t *testing.T) {
	e := testEngine()
	c := bulkFixture(e)

	next, res := e.BulkToggle(c, []string{"id-1", "id-3"}, true)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 0, res.FailureCount)

	completed := 0
	for _, todo := range next {
		if todo.Completed {
			require.NotNil(t, todo.CompletedAt)
			completed++
		}
	}
	assert.Equal(t, 2, completed)
}

func TestBulkTogglePartialFailure(t *testing.T) {
	e := testEngine()
	c := bulkFixture(e)

	_, res := e.BulkToggle(c, []string{"id-1", "ghost"}, true)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "ghost")
}

func TestBulkDelete(t *testing.T) {
	e := testEngine()
	c := bulkFixture(e)

	next, res := e.BulkDelete(c, []string{"id-2", "ghost"})
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	assert.Equal(t, []string{"c", "a"}, titles(next))
}

func TestBulkCompleteAndReset(t *testing.T) {
	e := testEngine()
	c := bulkFixture(e)

	done, res := e.BulkComplete(c)
	assert.Equal(t, 3, res.SuccessCount)
	for _, todo := range done {
		assert.True(t, todo.Completed)
		assert.NotNil(t, todo.CompletedAt)
	}

	reset, res := e.BulkReset(done)
	assert.Equal(t, 3, res.SuccessCount)
	for _, todo := range reset {
		assert.False(t, todo.Completed)
		assert.Nil(t, todo.CompletedAt)
	}
}

func TestBulkDuplicate(t *testing.T) {
	e := testEngine()
	c := mustAdd(e, nil, "original", AddOptions{
		Priority: domain.PriorityLow,
		Category: "Work",
		Notes:    "keep me",
	})
	c, _ = e.Toggle(c, "id-1")

	next, res := e.BulkDuplicate(c, []string{"id-1"})
	assert.Equal(t, 1, res.SuccessCount)
	require.Len(t, next, 2)

	clone := next[0] // prepend order puts the clone first
	assert.NotEqual(t, "id-1", clone.ID)
	assert.Equal(t, "original", clone.Title)
	assert.Equal(t, domain.PriorityLow, clone.Priority)
	assert.Equal(t, "Work", clone.Category)
	assert.Equal(t, "keep me", clone.Notes)
	assert.False(t, clone.Completed)
	assert.Nil(t, clone.CompletedAt)
	assert.Equal(t, testNow, clone.CreatedAt)
}

func TestBulkRename(t *testing.T) {
	e := testEngine()
	c := bulkFixture(e)

	next, res := e.BulkRename(c, map[string]string{
		"id-1":  "renamed",
		"id-2":  "   ",
		"ghost": "whatever",
	})
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 2, res.FailureCount)
	assert.Len(t, res.Errors, 2)

	byID := map[string]string{}
	for _, todo := range next {
		byID[todo.ID] = todo.Title
	}
	assert.Equal(t, "renamed", byID["id-1"])
	assert.Equal(t, "b", byID["id-2"], "empty rename must be skipped")
}
