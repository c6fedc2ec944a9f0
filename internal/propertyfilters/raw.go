// Package propertyfilters implements the small text language users type to
// filter call logs by their free-form properties:
//
//	env=prod                      property env equals "prod"
//	url=https://example.com/~me   "=" binds before "~", the value keeps its "~"
//	region~eu                     property region contains "eu"
//	trace_id?                     property trace_id is present
//	trace_id                      same as above
//
// Parsing is best effort and never fails; a line that yields an empty key is
// kept and dropped by every consumer.
package propertyfilters

import (
	"strings"

	"mcp-monitoring/internal/models"
)

// ParseRaw parses one filter per line. Precedence per line: trailing "?",
// first "=", first "~", bare key.
func ParseRaw(text string) []models.PropertyFilter {
	var filters []models.PropertyFilter
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		filters = append(filters, parseLine(line))
	}
	return filters
}

func parseLine(line string) models.PropertyFilter {
	if strings.HasSuffix(line, "?") {
		return models.PropertyFilter{
			Key:      strings.TrimSpace(strings.TrimSuffix(line, "?")),
			Operator: models.OperatorExists,
		}
	}
	// "=" must be checked before "~": values such as URLs may contain "~".
	if key, value, ok := strings.Cut(line, "="); ok {
		return models.PropertyFilter{
			Key:      strings.TrimSpace(key),
			Operator: models.OperatorEq,
			Value:    strings.TrimSpace(value),
		}
	}
	if key, value, ok := strings.Cut(line, "~"); ok {
		return models.PropertyFilter{
			Key:      strings.TrimSpace(key),
			Operator: models.OperatorContains,
			Value:    strings.TrimSpace(value),
		}
	}
	return models.PropertyFilter{Key: line, Operator: models.OperatorExists}
}

// ToRaw renders filters back into the line format, skipping blank keys.
func ToRaw(filters []models.PropertyFilter) string {
	lines := make([]string, 0, len(filters))
	for _, f := range filters {
		if strings.TrimSpace(f.Key) == "" {
			continue
		}
		switch f.Operator {
		case models.OperatorEq:
			lines = append(lines, f.Key+"="+f.Value)
		case models.OperatorContains:
			lines = append(lines, f.Key+"~"+f.Value)
		default:
			lines = append(lines, f.Key+"?")
		}
	}
	return strings.Join(lines, "\n")
}
