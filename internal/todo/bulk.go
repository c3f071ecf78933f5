package todo

import (
	"fmt"

	"todoapp/internal/domain"
)

// BulkResult summarizes a bulk operation. Bulk operations never fail as a
// whole: partial success is reported here instead.
type BulkResult struct {
	SuccessCount int      `json:"successCount"`
	FailureCount int      `json:"failureCount"`
	Errors       []string `json:"errors"`
}

func (r *BulkResult) fail(format string, args ...any) {
	r.FailureCount++
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// BulkToggle sets completed on every todo matching ids. Ids that match nothing
// are counted as failures.
func (e *Engine) BulkToggle(current []domain.Todo, ids []string, completed bool) ([]domain.Todo, BulkResult) {
	res := BulkResult{Errors: []string{}}
	next := domain.CloneAll(current)
	now := e.now()
	for _, id := range ids {
		idx := indexOf(next, id)
		if idx < 0 {
			res.fail("todo %s not found", id)
			continue
		}
		next[idx] = setCompleted(next[idx], completed, now)
		res.SuccessCount++
	}
	return next, res
}

// BulkDelete removes every todo matching ids.
func (e *Engine) BulkDelete(current []domain.Todo, ids []string) ([]domain.Todo, BulkResult) {
	res := BulkResult{Errors: []string{}}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	matched := make(map[string]struct{}, len(ids))
	next := make([]domain.Todo, 0, len(current))
	for _, t := range current {
		if _, ok := set[t.ID]; ok {
			matched[t.ID] = struct{}{}
			continue
		}
		next = append(next, t)
	}
	for _, id := range ids {
		if _, ok := matched[id]; ok {
			res.SuccessCount++
		} else {
			res.fail("todo %s not found", id)
		}
	}
	return next, res
}

// BulkComplete marks the whole collection completed.
func (e *Engine) BulkComplete(current []domain.Todo) ([]domain.Todo, BulkResult) {
	res := BulkResult{Errors: []string{}}
	next := domain.CloneAll(current)
	now := e.now()
	for i := range next {
		next[i] = setCompleted(next[i], true, now)
		res.SuccessCount++
	}
	return next, res
}

// BulkReset marks the whole collection pending again.
func (e *Engine) BulkReset(current []domain.Todo) ([]domain.Todo, BulkResult) {
	res := BulkResult{Errors: []string{}}
	next := domain.CloneAll(current)
	for i := range next {
		next[i] = setCompleted(next[i], false, e.now())
		res.SuccessCount++
	}
	return next, res
}

// BulkDuplicate clones the todos matching ids with fresh ids, createdAt = now,
// and completed = false; other fields are preserved. Clones are inserted per
// the configured order.
func (e *Engine) BulkDuplicate(current []domain.Todo, ids []string) ([]domain.Todo, BulkResult) {
	res := BulkResult{Errors: []string{}}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	var clones []domain.Todo
	matched := make(map[string]struct{}, len(ids))
	now := e.now()
	for _, t := range current {
		if _, ok := set[t.ID]; !ok {
			continue
		}
		matched[t.ID] = struct{}{}
		c := t.Clone()
		c.ID = e.newID()
		c.CreatedAt = now
		c.Completed = false
		c.CompletedAt = nil
		c.Notified = false
		clones = append(clones, c)
	}
	for _, id := range ids {
		if _, ok := matched[id]; ok {
			res.SuccessCount++
		} else {
			res.fail("todo %s not found", id)
		}
	}

	next := make([]domain.Todo, 0, len(current)+len(clones))
	if e.order == InsertAppend {
		next = append(next, current...)
		next = append(next, clones...)
	} else {
		next = append(next, clones...)
		next = append(next, current...)
	}
	return next, res
}

// BulkRename applies new titles keyed by id. Entries whose title is empty
// after trimming are skipped and recorded as errors; missing ids are failures.
func (e *Engine) BulkRename(current []domain.Todo, titles map[string]string) ([]domain.Todo, BulkResult) {
	res := BulkResult{Errors: []string{}}
	next := domain.CloneAll(current)
	for id, title := range titles {
		idx := indexOf(next, id)
		if idx < 0 {
			res.fail("todo %s not found", id)
			continue
		}
		if err := ValidateTitle(title); err != nil {
			res.fail("cannot rename todo %s: %s", id, err.Error())
			continue
		}
		next[idx].Title = SanitizeTitle(title)
		res.SuccessCount++
	}
	return next, res
}
