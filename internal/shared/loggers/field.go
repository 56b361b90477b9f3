package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration    = "duration"
	FieldRequestID   = "request_id"
	FieldErrorStack  = "error_stack"
	FieldErrorCode   = "error_code"
	FieldPartitionID = "partition_id"

	FieldRunID        = "run_id"
	FieldIndexPattern = "index_pattern"
	FieldWindowStart  = "window_start"
	FieldWindowEnd    = "window_end"
	FieldRowCount     = "row_count"
	FieldWallHours    = "wall_hours"
)
