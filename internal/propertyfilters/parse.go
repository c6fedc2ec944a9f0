package propertyfilters

import (
	"mcp-monitoring/internal/models"
)

// Parsed carries every representation of a filter set the UI needs after the
// user edits the raw text.
type Parsed struct {
	Filters    []models.PropertyFilter `json:"filters"`
	Raw        string                  `json:"raw"`
	Serialized string                  `json:"serialized"`
	APIParams  APIParams               `json:"apiParams"`
}

// Parse parses raw text and derives the normalized raw form, the URL form and
// the log source params from it.
func Parse(raw string) Parsed {
	filters := ParseRaw(raw)
	if filters == nil {
		filters = []models.PropertyFilter{}
	}
	return Parsed{
		Filters:    filters,
		Raw:        ToRaw(filters),
		Serialized: Serialize(filters),
		APIParams:  ToAPIParams(filters),
	}
}
