package todo

import (
	"strings"

	"todoapp/internal/domain"
)

// MaxTitleLength is the longest title accepted after trimming.
const MaxTitleLength = 500

// ValidateTitle checks a todo title: non-empty after trimming and at most
// MaxTitleLength characters.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if len(trimmed) == 0 {
		return &ValidationError{Msg: "title cannot be empty"}
	}
	if len([]rune(trimmed)) > MaxTitleLength {
		return validationErrorf("title cannot exceed %d characters", MaxTitleLength)
	}
	return nil
}

// SanitizeTitle trims whitespace and truncates to MaxTitleLength. It never
// fails; callers that need a hard error use ValidateTitle instead.
func SanitizeTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	runes := []rune(trimmed)
	if len(runes) > MaxTitleLength {
		return string(runes[:MaxTitleLength])
	}
	return trimmed
}

// ValidateTodo checks the required fields of a single entity.
func ValidateTodo(t domain.Todo) error {
	if t.ID == "" {
		return &ValidationError{Msg: "todo must have a valid id"}
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() {
		return &ValidationError{Msg: "todo must have a valid createdAt date"}
	}
	if !t.Priority.Valid() {
		return validationErrorf("unknown priority %q", t.Priority)
	}
	if t.Completed && t.CompletedAt == nil {
		return &ValidationError{Msg: "completed todo is missing completedAt"}
	}
	if !t.Completed && t.CompletedAt != nil {
		return &ValidationError{Msg: "pending todo has completedAt set"}
	}
	return nil
}

// ValidateCollection checks every entity and reports the index of the first
// invalid one. It also rejects duplicate ids.
func ValidateCollection(todos []domain.Todo) error {
	seen := make(map[string]struct{}, len(todos))
	for i, t := range todos {
		if err := ValidateTodo(t); err != nil {
			return validationErrorf("invalid todo at index %d: %s", i, err.Error())
		}
		if _, dup := seen[t.ID]; dup {
			return validationErrorf("invalid todo at index %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
