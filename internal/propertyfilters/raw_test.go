package propertyfilters

import (
	"testing"

	"mcp-monitoring/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []models.PropertyFilter
	}{
		{
			name:     "empty text",
			raw:      "",
			expected: nil,
		},
		{
			name:     "blank lines are ignored",
			raw:      "\n   \n\t\n",
			expected: nil,
		},
		{
			name: "equality",
			raw:  "env=prod",
			expected: []models.PropertyFilter{
				{Key: "env", Operator: models.OperatorEq, Value: "prod"},
			},
		},
		{
			name: "equality splits on first equals sign",
			raw:  "query=a=b",
			expected: []models.PropertyFilter{
				{Key: "query", Operator: models.OperatorEq, Value: "a=b"},
			},
		},
		{
			name: "equals binds before tilde",
			raw:  "url=https://example.com/~user",
			expected: []models.PropertyFilter{
				{Key: "url", Operator: models.OperatorEq, Value: "https://example.com/~user"},
			},
		},
		{
			name: "contains",
			raw:  "region~eu",
			expected: []models.PropertyFilter{
				{Key: "region", Operator: models.OperatorContains, Value: "eu"},
			},
		},
		{
			name: "trailing question mark is exists",
			raw:  "trace_id?",
			expected: []models.PropertyFilter{
				{Key: "trace_id", Operator: models.OperatorExists, Value: ""},
			},
		},
		{
			name: "question mark wins over equals",
			raw:  "a=b?",
			expected: []models.PropertyFilter{
				{Key: "a=b", Operator: models.OperatorExists, Value: ""},
			},
		},
		{
			name: "bare key is exists",
			raw:  "trace_id",
			expected: []models.PropertyFilter{
				{Key: "trace_id", Operator: models.OperatorExists, Value: ""},
			},
		},
		{
			name: "lines are trimmed and order is kept",
			raw:  "  env = prod \r\nregion~eu\n\nuser?\n",
			expected: []models.PropertyFilter{
				{Key: "env", Operator: models.OperatorEq, Value: "prod"},
				{Key: "region", Operator: models.OperatorContains, Value: "eu"},
				{Key: "user", Operator: models.OperatorExists, Value: ""},
			},
		},
		{
			name: "duplicate keys are independent filters",
			raw:  "env~pro\nenv=prod",
			expected: []models.PropertyFilter{
				{Key: "env", Operator: models.OperatorContains, Value: "pro"},
				{Key: "env", Operator: models.OperatorEq, Value: "prod"},
			},
		},
		{
			name: "malformed line yields empty key",
			raw:  "=value",
			expected: []models.PropertyFilter{
				{Key: "", Operator: models.OperatorEq, Value: "value"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseRaw(tt.raw))
		})
	}
}

func TestToRaw(t *testing.T) {
	t.Parallel()

	filters := []models.PropertyFilter{
		{Key: "env", Operator: models.OperatorEq, Value: "prod"},
		{Key: "  ", Operator: models.OperatorEq, Value: "dropped"},
		{Key: "region", Operator: models.OperatorContains, Value: "eu"},
		{Key: "trace_id", Operator: models.OperatorExists, Value: "ignored"},
		{Key: "", Operator: models.OperatorExists},
	}

	assert.Equal(t, "env=prod\nregion~eu\ntrace_id?", ToRaw(filters))
	assert.Equal(t, "", ToRaw(nil))
}

func TestParseRaw_RoundTripsToRaw(t *testing.T) {
	t.Parallel()

	filters := []models.PropertyFilter{
		{Key: "url", Operator: models.OperatorEq, Value: "https://example.com/~user"},
		{Key: "region", Operator: models.OperatorContains, Value: "eu-west"},
		{Key: "trace_id", Operator: models.OperatorExists, Value: "normalized away"},
		{Key: "env", Operator: models.OperatorEq, Value: "prod"},
	}

	parsed := ParseRaw(ToRaw(filters))

	expected := []models.PropertyFilter{
		{Key: "url", Operator: models.OperatorEq, Value: "https://example.com/~user"},
		{Key: "region", Operator: models.OperatorContains, Value: "eu-west"},
		{Key: "trace_id", Operator: models.OperatorExists, Value: ""},
		{Key: "env", Operator: models.OperatorEq, Value: "prod"},
	}
	assert.Equal(t, expected, parsed)
}
