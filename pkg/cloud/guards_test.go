package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        string
		expectError bool
	}{
		{name: "plain value", value: "task-123", want: "task-123"},
		{name: "trims whitespace", value: "  task-123  ", want: "task-123"},
		{name: "empty", value: "", expectError: true},
		{name: "whitespace only", value: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NonEmpty("task_id", tt.value)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "task_id")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntInRange(t *testing.T) {
	tests := []struct {
		name        string
		value       int
		expectError bool
	}{
		{name: "minimum", value: 1},
		{name: "maximum", value: 100},
		{name: "middle", value: 50},
		{name: "below minimum", value: 0, expectError: true},
		{name: "above maximum", value: 101, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntInRange("page_size", tt.value, 1, 100)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "page_size must be between 1 and 100")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "https", value: "https://example.com/page"},
		{name: "http", value: "http://example.com"},
		{name: "trims whitespace", value: "  https://example.com  "},
		{name: "empty", value: "", expectError: true},
		{name: "wrong scheme", value: "ftp://example.com", expectError: true},
		{name: "no scheme", value: "example.com", expectError: true},
		{name: "no host", value: "https://", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidURL(tt.value)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMaybeURL(t *testing.T) {
	got, err := MaybeURL("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = MaybeURL("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	_, err = MaybeURL("not a url")
	assert.Error(t, err)
}

func TestMaybeStripped(t *testing.T) {
	assert.Equal(t, "name", MaybeStripped("  name  "))
	assert.Empty(t, MaybeStripped("   "))
	assert.Empty(t, MaybeStripped(""))
}

func TestOneOf(t *testing.T) {
	got, err := OneOf("action", "stop", TaskActions)
	require.NoError(t, err)
	assert.Equal(t, "stop", got)

	_, err = OneOf("action", "launch", TaskActions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action must be one of: stop, pause, resume, stop_task_and_session")
}
