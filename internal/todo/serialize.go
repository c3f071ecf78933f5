package todo

import (
	"encoding/json"
	"strings"
	"time"

	"todoapp/internal/domain"
)

// EnvelopeVersion tags the interchange format.
const EnvelopeVersion = "1.0"

// Envelope is the versioned wrapper for export/import interchange.
type Envelope struct {
	Version    string        `json:"version"`
	ExportDate time.Time     `json:"exportDate"`
	Todos      []domain.Todo `json:"todos"`
}

// ExportJSON validates the collection and renders the interchange envelope.
// Timestamps serialize as RFC 3339 via time.Time's JSON encoding.
func ExportJSON(todos []domain.Todo, now time.Time) ([]byte, error) {
	if err := ValidateCollection(todos); err != nil {
		return nil, err
	}
	env := Envelope{
		Version:    EnvelopeVersion,
		ExportDate: now.UTC(),
		Todos:      todos,
	}
	if env.Todos == nil {
		env.Todos = []domain.Todo{}
	}
	return json.MarshalIndent(env, "", "  ")
}

// ImportJSON parses an interchange envelope and re-validates every entity.
// Malformed payloads fail with ImportError; validation failures are wrapped
// in ImportError so callers see one error kind for bad payloads.
func ImportJSON(data []byte) ([]domain.Todo, error) {
	var probe struct {
		Version string          `json:"version"`
		Todos   json.RawMessage `json:"todos"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ImportError{Err: err}
	}
	if probe.Version == "" || len(probe.Todos) == 0 || probe.Todos[0] != '[' {
		return nil, &ImportError{Err: validationErrorf("invalid export format")}
	}

	var todos []domain.Todo
	if err := json.Unmarshal(probe.Todos, &todos); err != nil {
		return nil, &ImportError{Err: err}
	}
	if err := ValidateCollection(todos); err != nil {
		return nil, &ImportError{Err: err}
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// ExportCSV renders the collection as CSV with the header
// "ID,Title,Completed,Created At". The title field is always quoted with
// embedded quotes doubled; encoding/csv quotes only when needed, which would
// change the established format, so rows are emitted by hand.
func ExportCSV(todos []domain.Todo) ([]byte, error) {
	if err := ValidateCollection(todos); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("ID,Title,Completed,Created At")
	for _, t := range todos {
		b.WriteByte('\n')
		b.WriteString(t.ID)
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(t.Title, `"`, `""`))
		b.WriteString(`",`)
		if t.Completed {
			b.WriteString("Yes")
		} else {
			b.WriteString("No")
		}
		b.WriteByte(',')
		b.WriteString(t.CreatedAt.UTC().Format(time.RFC3339))
	}
	return []byte(b.String()), nil
}
