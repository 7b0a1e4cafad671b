package config

// Environment variable names
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvDataDir       = "DATA_DIR"
	EnvStoreFile     = "STORE_FILE"
	EnvLegacyDir     = "LEGACY_DIR"
	EnvDeadLetter    = "DEAD_LETTER_FILE"
	EnvAPIKey        = "API_KEY"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "json"
	DefaultEnvironment = "development"
	DefaultDataDir     = "data"
	DefaultStoreFile   = "chestwarden.db"
	DefaultDeadLetter  = "deadletter.jsonl"
)
