package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpRoute  = "http_route"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldBatchID     = "batch_id"
	FieldGroupBy     = "group_by"
	FieldRankMetric  = "rank_metric"
	FieldBucketCount = "bucket_count"
	FieldLogCount    = "log_count"
	FieldRangeStart  = "range_start"
	FieldRangeEnd    = "range_end"
	FieldMCPTool     = "mcp_tool"
	FieldViewStateID = "view_state_id"
)
