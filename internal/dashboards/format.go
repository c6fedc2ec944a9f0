package dashboards

import (
	"fmt"
	"math"
	"strconv"
)

// MissingValue is rendered in place of a value a widget result did not carry.
const MissingValue = "-"

// FormatNumber compacts v for display. Whole numbers use one decimal above a
// thousand ("1.5K", "2.0M") and are printed plainly below it; fractional
// numbers use two decimals in every case ("1.25K", "3.14").
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MissingValue
	}

	precision := 2
	if v == math.Trunc(v) {
		precision = 1
	}

	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return strconv.FormatFloat(v/1_000_000, 'f', precision, 64) + "M"
	case abs >= 1_000:
		return strconv.FormatFloat(v/1_000, 'f', precision, 64) + "K"
	case precision == 1:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
