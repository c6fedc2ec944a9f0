package propertyfilters

import (
	"testing"

	"mcp-monitoring/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	parsed := Parse("  env = prod \nregion~eu\n\ntrace_id?")

	assert.Equal(t, []models.PropertyFilter{
		{Key: "env", Operator: models.OperatorEq, Value: "prod"},
		{Key: "region", Operator: models.OperatorContains, Value: "eu"},
		{Key: "trace_id", Operator: models.OperatorExists},
	}, parsed.Filters)
	assert.Equal(t, "env=prod\nregion~eu\ntrace_id?", parsed.Raw)
	assert.Equal(t, parsed.Filters, Deserialize(parsed.Serialized))
	assert.Equal(t, map[string]string{"env": "prod"}, parsed.APIParams.Properties)
	assert.Equal(t, map[string]string{"region": "%eu%"}, parsed.APIParams.PropertyPatterns)
	assert.Equal(t, []string{"trace_id"}, parsed.APIParams.PropertyKeys)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	parsed := Parse(" \n ")

	assert.Empty(t, parsed.Filters)
	assert.NotNil(t, parsed.Filters)
	assert.Empty(t, parsed.Raw)
	assert.Empty(t, parsed.Serialized)
	assert.True(t, parsed.APIParams.IsEmpty())
}
