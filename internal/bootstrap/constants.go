package bootstrap

import "time"

// Event system defaults
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

// DirPermission is the permission used when creating data directories.
const DirPermission = 0o755

// Log messages for application lifecycle
const (
	LogMsgEventSystemInitialized       = "Event system initialized"
	LogMsgFailedCreateDataDir          = "failed to create data directory"
	LogMsgFailedCreateDeadLetterWriter = "failed to create dead-letter writer"
	LogMsgStoreUnavailable             = "Offline store unavailable, continuing in fallback-only mode"
	LogMsgLegacyFallbackEnabled        = "Legacy record fallback enabled"
	LogMsgLegacyFallbackDisabled       = "Legacy record fallback disabled"
	LogMsgShuttingDownServer           = "Shutting down server"
	LogMsgServerForcedShutdown         = "Server forced to shutdown"
	LogMsgShuttingDownEventPublisher   = "Flushing event publisher"
	LogMsgStoreCloseFailed             = "Store close failed"
	LogMsgDeadLetterCloseFailed        = "Dead-letter writer close failed"
	LogMsgServerStopped                = "Server stopped"
)
