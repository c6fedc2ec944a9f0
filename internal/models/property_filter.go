package models

// FilterOperator is the comparison of a property filter.
type FilterOperator string

const (
	OperatorEq       FilterOperator = "eq"
	OperatorContains FilterOperator = "contains"
	OperatorExists   FilterOperator = "exists"
)

// Valid reports whether o is a known operator.
func (o FilterOperator) Valid() bool {
	switch o {
	case OperatorEq, OperatorContains, OperatorExists:
		return true
	}
	return false
}

// PropertyFilter is a predicate over the free-form properties of a call log.
// Value is empty for OperatorExists. Filters with the same key are ANDed.
type PropertyFilter struct {
	Key      string         `json:"key"`
	Operator FilterOperator `json:"operator"`
	Value    string         `json:"value"`
}
