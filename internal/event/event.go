// Package event carries the player session lifecycle events between the host
// adapter and the snapshot tracker over an in-process bus.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tolvmar/chestwarden/internal/live"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata interface{} `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Session lifecycle event types
const (
	PlayerJoined Type = "player.joined"
	PlayerLeft   Type = "player.left"
)

// PlayerSessionPayloadV1 is the typed payload for join and leave events. The
// host adapter serializes the player's container contents into the payload so
// the tracker can persist a snapshot without reaching back into the live
// runtime after the player is gone.
type PlayerSessionPayloadV1 struct {
	XUID       string          `json:"xuid"`
	Name       string          `json:"name"`
	Timestamp  int64           `json:"timestamp"`
	Inventory  []live.SlotItem `json:"inventory"`
	EnderChest []live.SlotItem `json:"ender_chest"`
}

// NewPlayerJoinedEvent creates a join event with a type-safe payload
func NewPlayerJoinedEvent(xuid, name string, inventory, enderChest []live.SlotItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerJoined,
		Payload: PlayerSessionPayloadV1{
			XUID:       xuid,
			Name:       name,
			Timestamp:  time.Now().Unix(),
			Inventory:  inventory,
			EnderChest: enderChest,
		},
		Metadata: nil,
	}
}

// NewPlayerLeftEvent creates a leave event with a type-safe payload
func NewPlayerLeftEvent(xuid, name string, inventory, enderChest []live.SlotItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLeft,
		Payload: PlayerSessionPayloadV1{
			XUID:       xuid,
			Name:       name,
			Timestamp:  time.Now().Unix(),
			Inventory:  inventory,
			EnderChest: enderChest,
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously so a join snapshot is durable before the
	// publisher returns.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
