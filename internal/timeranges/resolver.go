// Package timeranges evaluates the time expressions a monitoring view is
// configured with ("now", "now-24h", RFC3339 instants) into concrete ranges.
package timeranges

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"mcp-monitoring/internal/models"
)

const nowKeyword = "now"

var (
	ErrEmptyExpression = errors.New("empty time expression")
	ErrStartAfterEnd   = errors.New("range start is after range end")
	ErrOffsetTooLarge  = errors.New("offset too large")
	ErrRangeTooLong    = errors.New("range too long")
)

// Resolve evaluates expr relative to now. Accepted forms are "now",
// "now-<n><unit>" where unit is one of s m h d w (or any Go duration such as
// "now-1h30m"), and RFC3339 timestamps.
func Resolve(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, ErrEmptyExpression
	}

	if expr == nowKeyword {
		return now, nil
	}

	if offset, ok := strings.CutPrefix(expr, nowKeyword+"-"); ok {
		d, err := parseOffset(offset)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time expression %q: %w", expr, err)
		}
		return now.Add(-d), nil
	}

	t, err := time.Parse(time.RFC3339, expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time expression %q: expected now, now-<n><unit> or RFC3339", expr)
	}
	return t, nil
}

// ResolveRange evaluates both ends of a range against the same now.
func ResolveRange(from, to string, now time.Time) (models.TimeRange, error) {
	start, err := Resolve(from, now)
	if err != nil {
		return models.TimeRange{}, err
	}
	end, err := Resolve(to, now)
	if err != nil {
		return models.TimeRange{}, err
	}
	if start.After(end) {
		return models.TimeRange{}, fmt.Errorf("%w: %s > %s", ErrStartAfterEnd, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return models.TimeRange{Start: start, End: end}, nil
}

// CheckSpan rejects ranges longer than maxSpan. A non-positive maxSpan
// allows any length.
func CheckSpan(r models.TimeRange, maxSpan time.Duration) error {
	if maxSpan > 0 && r.End.Sub(r.Start) > maxSpan {
		return fmt.Errorf("%w: %s exceeds %s", ErrRangeTooLong, r.End.Sub(r.Start), maxSpan)
	}
	return nil
}

// parseOffset accepts Go durations plus day and week units, which
// time.ParseDuration does not know.
func parseOffset(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("missing offset")
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'd':
		unit = 24 * time.Hour
	case 'w':
		unit = 7 * 24 * time.Hour
	default:
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
		if d < 0 {
			return 0, errors.New("negative offset")
		}
		return d, nil
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	if int64(n) > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q", ErrOffsetTooLarge, s)
	}
	return time.Duration(n) * unit, nil
}
