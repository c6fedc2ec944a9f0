package models

import "time"

// ViewState is the persisted selection of a monitoring view: time range
// expressions, serialized property filters and the ranking choice.
//
// Example JSON:
//
//	{
//	  "id": "default",
//	  "from": "now-24h",
//	  "to": "now",
//	  "filters": "env:eq:prod",
//	  "groupBy": "connection",
//	  "rankMetric": "requests",
//	  "bucketCount": 0,
//	  "updatedAt": "2025-12-28T18:03:00Z"
//	}
type ViewState struct {
	ID          string     `json:"id" validate:"required,max=64"`
	From        string     `json:"from" validate:"required"`
	To          string     `json:"to" validate:"required"`
	Filters     string     `json:"filters"`
	GroupBy     GroupBy    `json:"groupBy" validate:"required,oneof=connection agent"`
	RankMetric  RankMetric `json:"rankMetric" validate:"required,oneof=requests errorRate latency"`
	BucketCount int        `json:"bucketCount" validate:"min=0,max=500"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DefaultViewState is the state a view starts from before anything was saved.
func DefaultViewState(id string) *ViewState {
	return &ViewState{
		ID:         id,
		From:       "now-24h",
		To:         "now",
		GroupBy:    GroupByConnection,
		RankMetric: RankByRequests,
	}
}

// ViewStatePatch holds the fields a client wants to change; nil fields are kept.
type ViewStatePatch struct {
	From        *string     `json:"from,omitempty"`
	To          *string     `json:"to,omitempty"`
	Filters     *string     `json:"filters,omitempty"`
	GroupBy     *GroupBy    `json:"groupBy,omitempty"`
	RankMetric  *RankMetric `json:"rankMetric,omitempty"`
	BucketCount *int        `json:"bucketCount,omitempty"`
}

// Apply returns a copy of s with the patch applied.
func (p ViewStatePatch) Apply(s ViewState) ViewState {
	if p.From != nil {
		s.From = *p.From
	}
	if p.To != nil {
		s.To = *p.To
	}
	if p.Filters != nil {
		s.Filters = *p.Filters
	}
	if p.GroupBy != nil {
		s.GroupBy = *p.GroupBy
	}
	if p.RankMetric != nil {
		s.RankMetric = *p.RankMetric
	}
	if p.BucketCount != nil {
		s.BucketCount = *p.BucketCount
	}
	return s
}
