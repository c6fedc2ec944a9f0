package aggregators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestP95(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int64
		expected int64
	}{
		{name: "empty", values: nil, expected: 0},
		{name: "single value", values: []int64{50}, expected: 50},
		{name: "five values picks the max", values: []int64{10, 20, 30, 40, 100}, expected: 100},
		{name: "unsorted input", values: []int64{100, 10, 40, 30, 20}, expected: 100},
		{name: "twenty values picks the 19th", values: seq(1, 20), expected: 19},
		{name: "hundred values picks the 95th", values: seq(1, 100), expected: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, P95(tt.values))
		})
	}
}

func TestNearestRankPercentile_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	values := []int64{30, 10, 20}
	assert.Equal(t, int64(20), NearestRankPercentile(values, 50))
	assert.Equal(t, []int64{30, 10, 20}, values)
}

func TestNearestRankPercentile_Bounds(t *testing.T) {
	t.Parallel()

	values := []int64{5, 1, 9}
	assert.Equal(t, int64(1), NearestRankPercentile(values, 0), "p=0 clamps to the minimum")
	assert.Equal(t, int64(9), NearestRankPercentile(values, 100))
}

func seq(from, to int64) []int64 {
	values := make([]int64, 0, to-from+1)
	for v := from; v <= to; v++ {
		values = append(values, v)
	}
	return values
}
