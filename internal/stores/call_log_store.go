package stores

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/propertyfilters"
	"mcp-monitoring/internal/shared/filestorages"
	"mcp-monitoring/internal/shared/loggers"

	"golang.org/x/sync/errgroup"
)

const (
	callLogsDir      = "call-logs"
	callLogBatchDir  = "call-log-batches"
	partitionLayout  = "20060102"
	maxPartitionRead = 8
)

var (
	ErrCallLogBatchAlreadyExist = errors.New("call log batch already exists")
	ErrInvalidBatchID           = errors.New("invalid call log batch id")
)

// CallLogQuery selects call logs. Range is inclusive at both ends. Empty id
// sets and tool name do not constrain. Limit 0 returns every match; MaxLogs 0
// disables the cap.
type CallLogQuery struct {
	Range         models.TimeRange
	ConnectionIDs []string
	AgentIDs      []string
	ToolName      string
	Params        propertyfilters.APIParams
	Offset        int
	Limit         int
	MaxLogs       int
}

// CallLogStore keeps call logs partitioned by UTC day:
//
//	call-log-batches/<batchId>.json          batch manifest, create-if-not-exists
//	call-logs/<YYYYMMDD>/<batchId>.json      the batch's logs of that day
//
// The manifest is the deduplication point and is published last: a batch
// counts as stored only once every partition is on disk. A PutBatch whose
// manifest already exists fails with ErrCallLogBatchAlreadyExist. A PutBatch
// that failed part way left no manifest, so retrying it rewrites the
// partitions.
//
//go:generate mockgen -source=call_log_store.go -destination=./mocks/call_log_store_mock.go -package=mocks
type CallLogStore interface {
	PutBatch(ctx context.Context, batch *models.CallLogBatch) error
	// Query returns matching logs newest first. Logs beyond MaxLogs are dropped
	// (oldest first) and the page is flagged Truncated.
	Query(ctx context.Context, query CallLogQuery) (*models.CallLogPage, error)
}

type batchManifest struct {
	BatchID    string   `json:"batchId"`
	Partitions []string `json:"partitions"`
	LogCount   int      `json:"logCount"`
}

type callLogStore struct {
	fileStorage filestorages.FileStorage
}

func NewCallLogStore(fileStorage filestorages.FileStorage) CallLogStore {
	return &callLogStore{fileStorage: fileStorage}
}

func (s *callLogStore) PutBatch(ctx context.Context, batch *models.CallLogBatch) error {
	if batch.BatchID == "" || strings.ContainsAny(batch.BatchID, `/\`) {
		return ErrInvalidBatchID
	}

	partitions := make(map[string][]*models.CallLog)
	for _, log := range batch.Logs {
		day := partitionOf(log.Timestamp)
		partitions[day] = append(partitions[day], log)
	}
	days := make([]string, 0, len(partitions))
	for day := range partitions {
		days = append(days, day)
	}
	slices.Sort(days)

	manifestKey := fmt.Sprintf("%s/%s.json", callLogBatchDir, batch.BatchID)
	exists, err := s.exists(ctx, manifestKey)
	if err != nil {
		return fmt.Errorf("failed to check call log batch manifest: %w", err)
	}
	if exists {
		return ErrCallLogBatchAlreadyExist
	}

	for _, day := range days {
		part := &models.CallLogBatch{BatchID: batch.BatchID, Logs: partitions[day]}
		if err := s.putJSON(ctx, partitionKey(day, batch.BatchID), part, true); err != nil {
			return fmt.Errorf("failed to put call log partition %s: %w", day, err)
		}
	}

	manifest := batchManifest{BatchID: batch.BatchID, Partitions: days, LogCount: len(batch.Logs)}
	if err := s.putJSON(ctx, manifestKey, manifest, false); err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrCallLogBatchAlreadyExist
		}
		return fmt.Errorf("failed to put call log batch manifest: %w", err)
	}
	return nil
}

func (s *callLogStore) exists(ctx context.Context, key string) (bool, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return false, nil
		}
		return false, err
	}
	_ = readCloser.Close()
	return true, nil
}

func (s *callLogStore) Query(ctx context.Context, query CallLogQuery) (*models.CallLogPage, error) {
	var matcher *propertyfilters.Matcher
	if !query.Params.IsEmpty() {
		var err error
		if matcher, err = propertyfilters.NewMatcher(query.Params); err != nil {
			return nil, err
		}
	}
	filter := newLogFilter(query, matcher)

	days := partitionsBetween(query.Range.Start, query.Range.End)
	perDay := make([][]*models.CallLog, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPartitionRead)
	for i, day := range days {
		g.Go(func() error {
			logs, err := s.readPartition(gctx, day, filter)
			if err != nil {
				return err
			}
			perDay[i] = logs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var matched []*models.CallLog
	for _, logs := range perDay {
		matched = append(matched, logs...)
	}
	slices.SortFunc(matched, func(a, b *models.CallLog) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	page := &models.CallLogPage{Total: len(matched), Offset: query.Offset, Limit: query.Limit}
	if query.MaxLogs > 0 && len(matched) > query.MaxLogs {
		matched = matched[:query.MaxLogs]
		page.Truncated = true
		loggers.Ctx(ctx).Warn().
			Int(loggers.FieldLogCount, page.Total).
			Msgf("call log query truncated to %d logs", query.MaxLogs)
	}

	page.Logs = paginate(matched, query.Offset, query.Limit)
	metricQueryMatches.WithLabelValues().Observe(float64(page.Total))
	return page, nil
}

func (s *callLogStore) readPartition(ctx context.Context, day string, filter *logFilter) ([]*models.CallLog, error) {
	keys, err := s.fileStorage.List(ctx, fmt.Sprintf("%s/%s", callLogsDir, day))
	if err != nil {
		return nil, fmt.Errorf("failed to list call log partition %s: %w", day, err)
	}

	var logs []*models.CallLog
	for _, key := range keys {
		var batch models.CallLogBatch
		if err := s.getJSON(ctx, key, &batch); err != nil {
			return nil, err
		}
		for _, log := range batch.Logs {
			if log != nil && filter.match(log) {
				logs = append(logs, log)
			}
		}
	}
	metricPartitionsRead.WithLabelValues().Inc()
	return logs, nil
}

func (s *callLogStore) putJSON(ctx context.Context, key string, v any, allowOverwrite bool) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: allowOverwrite})
	return err
}

func (s *callLogStore) getJSON(ctx context.Context, key string, v any) error {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

type logFilter struct {
	startMs      int64
	endMs        int64
	connections  map[string]bool
	agents       map[string]bool
	toolName     string
	propsMatcher *propertyfilters.Matcher
}

func newLogFilter(query CallLogQuery, matcher *propertyfilters.Matcher) *logFilter {
	return &logFilter{
		startMs:      query.Range.StartMs(),
		endMs:        query.Range.EndMs(),
		connections:  toSet(query.ConnectionIDs),
		agents:       toSet(query.AgentIDs),
		toolName:     query.ToolName,
		propsMatcher: matcher,
	}
}

func (f *logFilter) match(log *models.CallLog) bool {
	ts := log.TimestampMs()
	if ts < f.startMs || ts > f.endMs {
		return false
	}
	if f.connections != nil && !f.connections[log.ConnectionID] {
		return false
	}
	if f.agents != nil && !f.agents[log.VirtualEntityID] {
		return false
	}
	if f.toolName != "" && log.ToolName != f.toolName {
		return false
	}
	return f.propsMatcher == nil || f.propsMatcher.Match(log.Properties)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func paginate(logs []*models.CallLog, offset, limit int) []*models.CallLog {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(logs) {
		return []*models.CallLog{}
	}
	logs = logs[offset:]
	if limit > 0 && limit < len(logs) {
		logs = logs[:limit]
	}
	return logs
}

func partitionOf(t time.Time) string {
	return t.UTC().Format(partitionLayout)
}

func partitionKey(day, batchID string) string {
	return fmt.Sprintf("%s/%s/%s.json", callLogsDir, day, batchID)
}

// partitionsBetween lists the UTC days touched by [start, end].
func partitionsBetween(start, end time.Time) []string {
	if end.Before(start) {
		return nil
	}
	day := start.UTC().Truncate(24 * time.Hour)
	last := end.UTC().Truncate(24 * time.Hour)

	var days []string
	for !day.After(last) {
		days = append(days, day.Format(partitionLayout))
		day = day.AddDate(0, 0, 1)
	}
	return days
}
