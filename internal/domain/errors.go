package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Store errors
	ErrMsgStoreUnavailable = "offline store unavailable"

	// Record errors
	ErrMsgCorruptRecord = "corrupt item record"

	// Lookup errors
	ErrMsgNotFound = "not found"

	// Action errors (user-facing, block a mutation with zero side effects)
	ErrMsgInventoryFull = "inventory is full"
	ErrMsgSlotEmpty     = "slot is empty"
	ErrMsgTargetOffline = "target is offline"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrStoreUnavailable means the store file could not be opened or
	// migrated at startup. Fatal to offline features, non-fatal overall:
	// the system degrades to fallback-only mode.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// ErrCorruptRecord is a per-item decode failure. Callers skip and log;
	// it never aborts decoding the remaining items of a batch.
	ErrCorruptRecord = errors.New(ErrMsgCorruptRecord)

	// ErrNotFound is the expected control value for "no such identity or
	// container", distinct from "identity exists, zero items".
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrInventoryFull = errors.New(ErrMsgInventoryFull)
	ErrSlotEmpty     = errors.New(ErrMsgSlotEmpty)
	ErrTargetOffline = errors.New(ErrMsgTargetOffline)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
