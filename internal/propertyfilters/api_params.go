package propertyfilters

import (
	"strings"

	"mcp-monitoring/internal/models"
)

// APIParams is the form property filters take in a log source query.
// Empty collections are nil so they disappear from JSON.
type APIParams struct {
	Properties       map[string]string `json:"properties,omitempty"`       // exact match
	PropertyPatterns map[string]string `json:"propertyPatterns,omitempty"` // SQL LIKE
	PropertyKeys     []string          `json:"propertyKeys,omitempty"`     // must exist
}

// IsEmpty reports whether the params constrain nothing.
func (p APIParams) IsEmpty() bool {
	return len(p.Properties) == 0 && len(p.PropertyPatterns) == 0 && len(p.PropertyKeys) == 0
}

// ToAPIParams converts filters into log source parameters. Filters with a
// blank key are dropped, as are eq filters without a value. Properties and
// PropertyPatterns hold one value per key, so of several eq (or contains)
// filters on the same key only the last one is kept.
func ToAPIParams(filters []models.PropertyFilter) APIParams {
	var params APIParams
	for _, f := range filters {
		if strings.TrimSpace(f.Key) == "" {
			continue
		}
		switch f.Operator {
		case models.OperatorEq:
			if f.Value == "" {
				continue
			}
			if params.Properties == nil {
				params.Properties = make(map[string]string)
			}
			params.Properties[f.Key] = f.Value
		case models.OperatorContains:
			if params.PropertyPatterns == nil {
				params.PropertyPatterns = make(map[string]string)
			}
			params.PropertyPatterns[f.Key] = "%" + f.Value + "%"
		case models.OperatorExists:
			params.PropertyKeys = append(params.PropertyKeys, f.Key)
		}
	}
	return params
}
