package propertyfilters

import (
	"net/url"
	"strings"

	"mcp-monitoring/internal/models"
)

const (
	entrySeparator = ","
	fieldSeparator = ":"
)

// url.QueryEscape escapes a superset of what encodeURIComponent does; undo the
// differences so serialized filters match what browsers produce.
var componentFixer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentFixer.Replace(url.QueryEscape(s))
}

// decodeComponent never fails: an invalid escape leaves the text as is.
func decodeComponent(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Serialize packs filters into a single URL query value:
// "key:operator:value" entries joined by ",", key and value percent-encoded.
func Serialize(filters []models.PropertyFilter) string {
	entries := make([]string, 0, len(filters))
	for _, f := range filters {
		entries = append(entries,
			encodeComponent(f.Key)+fieldSeparator+string(f.Operator)+fieldSeparator+encodeComponent(f.Value))
	}
	return strings.Join(entries, entrySeparator)
}

// Deserialize is the inverse of Serialize. Entries with an unknown operator
// are skipped; a missing value reads as "".
func Deserialize(s string) []models.PropertyFilter {
	if s == "" {
		return nil
	}

	var filters []models.PropertyFilter
	for _, entry := range strings.Split(s, entrySeparator) {
		parts := strings.SplitN(entry, fieldSeparator, 3)
		if len(parts) < 2 {
			continue
		}
		op := models.FilterOperator(parts[1])
		if !op.Valid() {
			continue
		}
		f := models.PropertyFilter{Key: decodeComponent(parts[0]), Operator: op}
		if len(parts) == 3 {
			f.Value = decodeComponent(parts[2])
		}
		filters = append(filters, f)
	}
	return filters
}
