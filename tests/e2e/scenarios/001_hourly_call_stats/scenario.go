package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalEntries = 4800 // 80 calls per minute over one hour
	errorEvery   = 10   // first 10 of every 100 entries fail
)

var (
	// connectionWeights maps entry index % 10 to a connection: 4/3/2/1 tenths.
	connectionWeights = []string{
		"conn_01", "conn_01", "conn_01", "conn_01",
		"conn_02", "conn_02", "conn_02",
		"conn_03", "conn_03",
		"conn_04",
	}
	toolNames  = []string{"search_issues", "create_issue", "list_repos"}
	userAgents = []string{
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"claude-desktop/0.7.1",
	}
	expectedRequests = map[string]int{"conn_01": 1920, "conn_02": 1440, "conn_03": 960, "conn_04": 480}
)

// ### End - fixed configs

type callLogPayload struct {
	ConnectionID string            `json:"connectionId"`
	ToolName     string            `json:"toolName"`
	IsError      bool              `json:"isError"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	DurationMs   int64             `json:"durationMs"`
	Timestamp    string            `json:"timestamp"`
	Properties   map[string]string `json:"properties"`
}

type batchToSend struct {
	batchIndex int
	jsonData   []byte
	isOriginal bool
}

type statsResponse struct {
	TotalCalls  int `json:"totalCalls"`
	TotalErrors int `json:"totalErrors"`
	Data        []struct {
		Label string `json:"label"`
		Calls int    `json:"calls"`
	} `json:"data"`
	Granularity string `json:"granularity"`
}

type topEntitiesResponse struct {
	Entities []struct {
		Entity struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"entity"`
		Metric struct {
			Requests int `json:"requests"`
		} `json:"metric"`
		Percentage float64 `json:"percentage"`
	} `json:"entities"`
}

type parseResponse struct {
	Serialized string `json:"serialized"`
}

// main runs the e2e scenario: 001_hourly_call_stats
//
// It ingests one hour of MCP call logs against four connections, replays a
// share of the batches with the same idempotency key, then reads the hour back
// through the monitoring API.
//
// Expected results:
//   - Original batches return 202, replays return 409
//   - Stats over the hour: 4800 calls, 480 errors, 60 minute buckets of 80 calls
//   - Stats filtered by env=prod (parsed through /api/property-filters/parse): 2400 calls
//   - Top connections by requests: conn_01 1920, conn_02 1440, conn_03 960, conn_04 480,
//     with catalog titles and conn_01 at 100%
func main() {
	baseURL := "http://localhost:8080"    // Base URL of the monitoring API server
	itemsPerBatch := 40                   // Original batches = totalEntries / itemsPerBatch
	parallel := 4                         // Concurrent batch requests
	totalDuplicates := 30                 // Replayed batches
	fileStorageDir := ".tmp/file-storage" // Must match file_storage.root_dir of the running server
	wantCleanFileStorage := true          // Clean the storage before running

	if totalEntries%itemsPerBatch != 0 {
		fail("totalEntries (%d) must be divisible by itemsPerBatch (%d)", totalEntries, itemsPerBatch)
	}
	batchCount := totalEntries / itemsPerBatch

	if wantCleanFileStorage {
		storagePath := resolveStoragePath(fileStorageDir)
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
	}

	// The hour ends two hours ago so it lies inside the 24h ranking window.
	hourStart := time.Now().UTC().Truncate(time.Hour).Add(-3 * time.Hour)
	hourEnd := hourStart.Add(time.Hour)

	fmt.Println("Starting e2e scenario: 001_hourly_call_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("HOUR: %s - %s\n", hourStart.Format(time.RFC3339), hourEnd.Format(time.RFC3339))
	fmt.Printf("BATCH_COUNT: %d, PARALLEL: %d, TOTAL_DUPLICATES: %d\n", batchCount, parallel, totalDuplicates)
	fmt.Println()

	mustPutCatalog(baseURL)

	batches := make([]batchToSend, 0, batchCount+totalDuplicates)
	for i := 0; i < batchCount; i++ {
		batches = append(batches, batchToSend{batchIndex: i + 1, jsonData: generateBatchJSON(i, itemsPerBatch, hourStart), isOriginal: true})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := batches[i%batchCount]
		batches = append(batches, batchToSend{batchIndex: original.batchIndex, jsonData: original.jsonData})
	}

	var (
		workerChan = make(chan struct{}, parallel)
		wg         sync.WaitGroup
		accepted   int64
		conflicted int64
		unexpected int64
	)
	// Originals first so every replay meets an existing batch.
	for _, group := range [][]batchToSend{batches[:batchCount], batches[batchCount:]} {
		for _, batch := range group {
			wg.Add(1)
			workerChan <- struct{}{}
			go func(b batchToSend) {
				defer wg.Done()
				defer func() { <-workerChan }()

				status, err := sendBatch(baseURL, b)
				switch {
				case err != nil:
					fmt.Fprintf(os.Stderr, "ERROR: batch %d: %v\n", b.batchIndex, err)
					atomic.AddInt64(&unexpected, 1)
				case status == http.StatusAccepted && b.isOriginal:
					atomic.AddInt64(&accepted, 1)
				case status == http.StatusConflict && !b.isOriginal:
					atomic.AddInt64(&conflicted, 1)
				default:
					fmt.Fprintf(os.Stderr, "ERROR: batch %d (original=%t): unexpected status %d\n", b.batchIndex, b.isOriginal, status)
					atomic.AddInt64(&unexpected, 1)
				}
			}(batch)
		}
		wg.Wait()
	}

	fmt.Println("=== Ingestion ===")
	fmt.Printf("Accepted: %d/%d\n", accepted, batchCount)
	fmt.Printf("Conflicted: %d/%d\n", conflicted, totalDuplicates)
	if unexpected > 0 || int(accepted) != batchCount || int(conflicted) != totalDuplicates {
		fail("ingestion did not behave as expected (%d unexpected responses)", unexpected)
	}

	fmt.Println("=== Stats ===")
	hourQuery := url.Values{"from": {hourStart.Format(time.RFC3339)}, "to": {hourEnd.Format(time.RFC3339)}}
	var stats statsResponse
	mustGetJSON(baseURL+"/api/monitoring/stats?"+hourQuery.Encode(), &stats)
	fmt.Printf("totalCalls=%d totalErrors=%d buckets=%d granularity=%s\n", stats.TotalCalls, stats.TotalErrors, len(stats.Data), stats.Granularity)
	expect(stats.TotalCalls == totalEntries, "totalCalls = %d, want %d", stats.TotalCalls, totalEntries)
	expect(stats.TotalErrors == totalEntries/errorEvery, "totalErrors = %d, want %d", stats.TotalErrors, totalEntries/errorEvery)
	expect(len(stats.Data) == 60, "bucket count = %d, want 60", len(stats.Data))
	for _, b := range stats.Data {
		expect(b.Calls == totalEntries/60, "bucket %s has %d calls, want %d", b.Label, b.Calls, totalEntries/60)
	}

	var parsed parseResponse
	mustPostJSON(baseURL+"/api/property-filters/parse", map[string]string{"raw": "env=prod"}, &parsed)
	hourQuery.Set("filters", parsed.Serialized)
	var prodStats statsResponse
	mustGetJSON(baseURL+"/api/monitoring/stats?"+hourQuery.Encode(), &prodStats)
	fmt.Printf("filters=%q totalCalls=%d\n", parsed.Serialized, prodStats.TotalCalls)
	expect(prodStats.TotalCalls == totalEntries/2, "filtered totalCalls = %d, want %d", prodStats.TotalCalls, totalEntries/2)

	fmt.Println("=== Top connections ===")
	var top topEntitiesResponse
	mustGetJSON(baseURL+"/api/monitoring/top-entities?groupBy=connection&metric=requests", &top)
	expect(len(top.Entities) == len(expectedRequests), "ranked %d connections, want %d", len(top.Entities), len(expectedRequests))
	for i, e := range top.Entities {
		fmt.Printf("%d. %s (%s) requests=%d percentage=%.1f\n", i+1, e.Entity.ID, e.Entity.Title, e.Metric.Requests, e.Percentage)
		expect(e.Metric.Requests == expectedRequests[e.Entity.ID], "%s requests = %d, want %d", e.Entity.ID, e.Metric.Requests, expectedRequests[e.Entity.ID])
		expect(e.Entity.Title != "", "%s has no catalog title", e.Entity.ID)
	}
	if len(top.Entities) > 0 {
		expect(top.Entities[0].Entity.ID == "conn_01" && top.Entities[0].Percentage == 100, "top entry = %s at %.1f%%, want conn_01 at 100%%", top.Entities[0].Entity.ID, top.Entities[0].Percentage)
	}

	fmt.Println("Scenario completed successfully")
}

func generateBatchJSON(batchIndex, batchSize int, hourStart time.Time) []byte {
	logs := make([]callLogPayload, 0, batchSize)
	for n := 0; n < batchSize; n++ {
		i := batchIndex*batchSize + n
		isError := (i/errorEvery)%errorEvery == 0
		env := "staging"
		if i%2 == 0 {
			env = "prod"
		}
		ts := hourStart.
			Add(time.Duration(i*60/totalEntries) * time.Minute).
			Add(time.Duration(i%60) * time.Second)

		log := callLogPayload{
			ConnectionID: connectionWeights[i%10],
			ToolName:     toolNames[i%len(toolNames)],
			IsError:      isError,
			DurationMs:   int64(50 + (i%20)*10),
			Timestamp:    ts.Format(time.RFC3339),
			Properties: map[string]string{
				"env":        env,
				"user_agent": userAgents[i%len(userAgents)],
			},
		}
		if isError {
			log.ErrorMessage = "upstream timeout"
		}
		logs = append(logs, log)
	}

	data, err := json.Marshal(logs)
	if err != nil {
		fail("marshal batch %d: %v", batchIndex, err)
	}
	return data
}

func sendBatch(baseURL string, batch batchToSend) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/call-logs", bytes.NewReader(batch.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", fmt.Sprintf("batch-%06d", batch.batchIndex))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func mustPutCatalog(baseURL string) {
	body, _ := json.Marshal(map[string]any{
		"entities": []map[string]string{
			{"id": "conn_01", "title": "GitHub"},
			{"id": "conn_02", "title": "Linear"},
			{"id": "conn_03", "title": "Slack"},
			{"id": "conn_04", "title": "Notion"},
		},
	})
	req, err := http.NewRequest(http.MethodPut, baseURL+"/api/catalog/connection", bytes.NewReader(body))
	if err != nil {
		fail("create catalog request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fail("put catalog: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fail("put catalog: status %d", resp.StatusCode)
	}
}

func mustGetJSON(target string, v any) {
	resp, err := http.Get(target)
	if err != nil {
		fail("GET %s: %v", target, err)
	}
	decodeResponse(resp, target, v)
}

func mustPostJSON(target string, payload, v any) {
	body, _ := json.Marshal(payload)
	resp, err := http.Post(target, "application/json", bytes.NewReader(body))
	if err != nil {
		fail("POST %s: %v", target, err)
	}
	decodeResponse(resp, target, v)
}

func decodeResponse(resp *http.Response, target string, v any) {
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fail("%s: status %d: %s", target, resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, v); err != nil {
		fail("%s: decode response: %v", target, err)
	}
}

// resolveStoragePath resolves dir against the directory holding go.mod.
func resolveStoragePath(dir string) string {
	root, err := os.Getwd()
	if err != nil {
		fail("get working directory: %v", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(root)
		if parent == root {
			fail("could not find go.mod, run from the project root")
		}
		root = parent
	}
	abs, err := filepath.Abs(filepath.Join(root, dir))
	if err != nil {
		fail("resolve storage path: %v", err)
	}
	return abs
}

func expect(ok bool, format string, args ...any) {
	if !ok {
		fail(format, args...)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
