package database

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// DSNPragmas configures the connection: write-ahead logging so readers never
// block on writers beyond a commit, a busy timeout so concurrent writers
// queue instead of failing, and enforced foreign keys.
const DSNPragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Log messages
const (
	LogMsgStoreOpened = "offline store opened"
)
