package models

import "time"

// TimeRange is a resolved [Start, End) window. Start is never after End.
type TimeRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

func (r TimeRange) StartMs() int64 { return r.Start.UnixMilli() }

func (r TimeRange) EndMs() int64 { return r.End.UnixMilli() }

// Duration is End - Start.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
