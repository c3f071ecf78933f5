package todo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/domain"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "Buy milk", false},
		{"valid with surrounding spaces", "  Buy milk  ", false},
		{"empty", "", true},
		{"whitespace only", "   \t  ", true},
		{"exactly max length", strings.Repeat("a", 500), false},
		{"over max length", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "Buy milk", SanitizeTitle("  Buy milk  "))
	assert.Equal(t, strings.Repeat("a", 500), SanitizeTitle(strings.Repeat("a", 600)))
	assert.Equal(t, "", SanitizeTitle("   "))
}

func TestValidateTodo(t *testing.T) {
	valid := domain.Todo{ID: "id-1", Title: "ok", CreatedAt: testNow}
	require.NoError(t, ValidateTodo(valid))

	var vErr *ValidationError

	noID := valid
	noID.ID = ""
	require.ErrorAs(t, ValidateTodo(noID), &vErr)

	noTitle := valid
	noTitle.Title = "  "
	require.ErrorAs(t, ValidateTodo(noTitle), &vErr)

	noCreated := valid
	noCreated.CreatedAt = time.Time{}
	require.ErrorAs(t, ValidateTodo(noCreated), &vErr)

	badPriority := valid
	badPriority.Priority = "urgent"
	require.ErrorAs(t, ValidateTodo(badPriority), &vErr)

	completedWithoutStamp := valid
	completedWithoutStamp.Completed = true
	require.ErrorAs(t, ValidateTodo(completedWithoutStamp), &vErr)
}

func TestValidateCollectionNamesIndex(t *testing.T) {
	todos := []domain.Todo{
		{ID: "id-1", Title: "ok", CreatedAt: testNow},
		{ID: "", Title: "bad", CreatedAt: testNow},
	}

	err := ValidateCollection(todos)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Msg, "index 1")
}

func TestValidateCollectionRejectsDuplicateIDs(t *testing.T) {
	todos := []domain.Todo{
		{ID: "id-1", Title: "a", CreatedAt: testNow},
		{ID: "id-1", Title: "b", CreatedAt: testNow},
	}

	err := ValidateCollection(todos)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Msg, "duplicate id")
}
