package aggregators

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"mcp-monitoring/internal/models"

	"github.com/dustin/go-humanize"
)

// DefaultRankingLimit is how many entities a ranking keeps.
const DefaultRankingLimit = 15

//go:generate mockgen -source=entity_ranker.go -destination=./mocks/entity_ranker_mock.go -package=mocks
type EntityRanker interface {
	// Rank orders the catalog entities that appear in logs by metric,
	// descending, and keeps the top entries. Equal values are ordered by
	// entity id so rankings are stable across calls.
	Rank(logs []*models.CallLog, catalog []models.Entity, groupBy models.GroupBy, metric models.RankMetric) []models.RankedEntity
}

type entityRanker struct {
	limit int
}

// NewEntityRanker returns a ranker keeping at most limit entries
// (DefaultRankingLimit when limit <= 0).
func NewEntityRanker(limit int) EntityRanker {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	return &entityRanker{limit: limit}
}

func (r *entityRanker) Rank(logs []*models.CallLog, catalog []models.Entity, groupBy models.GroupBy, metric models.RankMetric) []models.RankedEntity {
	metrics := AggregateByEntity(logs, groupBy)

	seen := make(map[string]bool, len(catalog))
	ranked := make([]models.RankedEntity, 0, len(metrics))
	for _, entity := range catalog {
		m, ok := metrics[entity.ID]
		if !ok || seen[entity.ID] {
			continue
		}
		seen[entity.ID] = true
		ranked = append(ranked, models.RankedEntity{
			Entity: entity,
			Metric: m,
			Value:  metric.ValueOf(m),
		})
	}

	slices.SortStableFunc(ranked, func(a, b models.RankedEntity) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Entity.ID, b.Entity.ID)
	})

	if len(ranked) > r.limit {
		ranked = ranked[:r.limit]
	}

	var maxValue float64
	if len(ranked) > 0 {
		maxValue = ranked[0].Value
	}
	for i := range ranked {
		ranked[i].Percentage = percentOfMax(ranked[i].Value, maxValue)
		ranked[i].FormattedValue = FormatMetricValue(metric, ranked[i].Value)
	}
	return ranked
}

// AggregateByEntity groups logs by the dimension key, skipping logs without one.
func AggregateByEntity(logs []*models.CallLog, groupBy models.GroupBy) map[string]models.EntityMetric {
	type accumulator struct {
		requests     int
		errors       int
		totalLatency int64
	}
	acc := make(map[string]*accumulator)

	for _, log := range logs {
		if log == nil {
			continue
		}
		key := groupBy.KeyOf(log)
		if key == "" {
			continue
		}
		a, ok := acc[key]
		if !ok {
			a = &accumulator{}
			acc[key] = a
		}
		a.requests++
		if log.IsError {
			a.errors++
		}
		a.totalLatency += log.DurationMs
	}

	result := make(map[string]models.EntityMetric, len(acc))
	for key, a := range acc {
		m := models.EntityMetric{
			Key:       key,
			Requests:  a.requests,
			Errors:    a.errors,
			ErrorRate: percentOf(a.errors, a.requests),
		}
		if a.requests > 0 {
			m.AvgLatencyMs = float64(a.totalLatency) / float64(a.requests)
		}
		result[key] = m
	}
	return result
}

// percentOfMax scales value against the top value for bar widths, capped at 100.
func percentOfMax(value, maxValue float64) float64 {
	if maxValue == 0 {
		return 0
	}
	return math.Min(value/maxValue*100, 100)
}

// FormatMetricValue renders a ranked value: "1,234" requests, "12.5%" error
// rate, "120ms" latency.
func FormatMetricValue(metric models.RankMetric, value float64) string {
	switch metric {
	case models.RankByErrorRate:
		return fmt.Sprintf("%.1f%%", value)
	case models.RankByLatency:
		return fmt.Sprintf("%dms", int64(math.Round(value)))
	default:
		return humanize.Comma(int64(value))
	}
}
