package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/metrics"
	"mcp-monitoring/internal/shared/svcerrors"
	"mcp-monitoring/internal/shared/ulid"
	"mcp-monitoring/internal/shared/validators"
	"mcp-monitoring/internal/stores"
)

const (
	maxBatchBytes = 2 * 1024 * 1024
	maxBatchIDLen = 128
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID     string `json:"batchId"`
	StoredCount int    `json:"storedCount"`
}

// callLogPayload is the producer wire form of a call log.
type callLogPayload struct {
	ID              string            `json:"id" validate:"max=128"`
	ConnectionID    string            `json:"connectionId" validate:"max=256"`
	VirtualEntityID string            `json:"virtualEntityId" validate:"max=256"`
	ToolName        string            `json:"toolName" validate:"required,max=256"`
	IsError         bool              `json:"isError"`
	ErrorMessage    string            `json:"errorMessage" validate:"max=4096"`
	DurationMs      *int64            `json:"durationMs" validate:"required,min=0"`
	Timestamp       string            `json:"timestamp" validate:"required"`
	Properties      map[string]string `json:"properties" validate:"max=64"`
	Input           json.RawMessage   `json:"input"`
	Output          json.RawMessage   `json:"output"`
}

// IngestionService accepts call logs from the log producer and stores them
// for the monitoring queries. It is the write side of the log source.
//
//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch stores a JSON array of call logs. A repeated idempotency key
	// is rejected as already processed.
	IngestBatch(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	normalizer   CallLogNormalizer
	callLogStore stores.CallLogStore
	validate     *validators.Validate
}

func NewIngestionService(normalizer CallLogNormalizer, callLogStore stores.CallLogStore) IngestionService {
	return &ingestionService{
		normalizer:   normalizer,
		callLogStore: callLogStore,
		validate:     validators.NewJSON(),
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting batch with idempotency key: %s, format: %s", idempotencyKey, format)

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	} else if len(batchID) > maxBatchIDLen || strings.ContainsAny(batchID, `/\`) {
		return nil, s.fail(errValidationFailed(fmt.Sprintf("idempotency key must be at most %d characters without slashes", maxBatchIDLen), nil))
	}

	logs, err := s.parseBatch(format, r)
	if err != nil {
		return nil, s.fail(err)
	}

	batch := &models.CallLogBatch{BatchID: batchID, Logs: logs}
	if err := s.callLogStore.PutBatch(ctx, batch); err != nil {
		if errors.Is(err, stores.ErrCallLogBatchAlreadyExist) {
			return nil, s.fail(errCallLogBatchAlreadyProcessed(err))
		}
		return nil, s.fail(errInternalCallLogStoreFailed(err))
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricCallLogsIngestedTotal.WithLabelValues().Add(float64(len(logs)))
	logger.Info().
		Str(loggers.FieldBatchID, batchID).
		Int(loggers.FieldLogCount, len(logs)).
		Msg("call log batch ingested")

	return &IngestResult{BatchID: batchID, StoredCount: len(logs)}, nil
}

// fail counts a rejected batch under its error code.
func (s *ingestionService) fail(err *svcerrors.ServiceError) error {
	metricBatchIngestedTotal.WithLabelValues(err.Code).Inc()
	return err
}

func (s *ingestionService) parseBatch(format string, r io.Reader) ([]*models.CallLog, *svcerrors.ServiceError) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, readErr := s.readWithLimit(r, maxBatchBytes)
	if readErr != nil {
		return nil, readErr
	}

	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	var payloads []callLogPayload
	if err := json.Unmarshal(buf, &payloads); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of call logs", err)
	}
	if len(payloads) == 0 {
		return nil, errValidationFailed("call logs cannot be empty", nil)
	}

	logs := make([]*models.CallLog, 0, len(payloads))
	for i := range payloads {
		log, svcErr := s.toCallLog(&payloads[i], i)
		if svcErr != nil {
			return nil, svcErr
		}
		logs = append(logs, log)
	}
	return logs, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, *svcerrors.ServiceError) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}
	return buf, nil
}

func (s *ingestionService) toCallLog(p *callLogPayload, index int) (*models.CallLog, *svcerrors.ServiceError) {
	p.ToolName = strings.TrimSpace(p.ToolName)
	p.Timestamp = strings.TrimSpace(p.Timestamp)

	if err := s.validate.Struct(p); err != nil {
		return nil, errValidationFailed(fmt.Sprintf("item at index %d: %s", index, validators.Describe(err)), err)
	}

	ts, err := time.Parse(time.RFC3339Nano, p.Timestamp)
	if err != nil {
		return nil, errValidationFailed(fmt.Sprintf("item at index %d: invalid timestamp: %s", index, p.Timestamp), err)
	}

	log := &models.CallLog{
		ID:              p.ID,
		ConnectionID:    p.ConnectionID,
		VirtualEntityID: p.VirtualEntityID,
		ToolName:        p.ToolName,
		IsError:         p.IsError,
		ErrorMessage:    p.ErrorMessage,
		DurationMs:      *p.DurationMs,
		Timestamp:       ts,
		Properties:      p.Properties,
		Input:           p.Input,
		Output:          p.Output,
	}
	s.normalizer.Normalize(log)
	return log, nil
}
