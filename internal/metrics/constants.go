package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "chestwarden_http_requests_total"
	MetricNameHTTPRequestDuration  = "chestwarden_http_request_duration_seconds"
	MetricNameStoreOperationsTotal = "chestwarden_store_operations_total"
	MetricNameSnapshotSavesTotal   = "chestwarden_snapshot_saves_total"
	MetricNameFallbackScansTotal   = "chestwarden_fallback_scans_total"
	MetricNameCorruptRecordsTotal  = "chestwarden_corrupt_records_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests by method, path and status"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds by method and path"
	HelpTextStoreOperationsTotal = "Total number of durable store operations by operation and status"
	HelpTextSnapshotSavesTotal   = "Total number of container snapshots written by kind"
	HelpTextFallbackScansTotal   = "Total number of legacy record directory scans"
	HelpTextCorruptRecordsTotal  = "Total number of legacy records skipped as corrupt"
)

// Labels
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelKind      = "kind"
)

// Status values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Store operation names
const (
	OpUpsertIdentity   = "upsert_identity"
	OpMarkOffline      = "mark_offline"
	OpReplaceContainer = "replace_container"
	OpReadContainer    = "read_container"
	OpSearchIdentities = "search_identities"
)

// HTTPLatencyBuckets covers the expected admin API latency range.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
