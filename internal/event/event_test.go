package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tolvmar/chestwarden/internal/live"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(PlayerJoined, func(ctx context.Context, event Event) error {
		if event.Type != PlayerJoined {
			t.Errorf("Expected event type %s, got %s", PlayerJoined, event.Type)
		}
		payload, ok := event.Payload.(PlayerSessionPayloadV1)
		if !ok {
			t.Fatalf("Expected PlayerSessionPayloadV1 payload, got %T", event.Payload)
		}
		if payload.XUID != "100" {
			t.Errorf("Expected xuid 100, got %s", payload.XUID)
		}
		handled = true
		return nil
	})

	inv := []live.SlotItem{{Index: 0, Item: live.Item{TypeID: "minecraft:dirt", Count: 1}}}
	err := bus.Publish(context.Background(), NewPlayerJoinedEvent("100", "Steve", inv, nil))

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(PlayerLeft, handler)
	bus.Subscribe(PlayerLeft, handler)

	err := bus.Publish(context.Background(), NewPlayerLeftEvent("100", "Steve", nil, nil))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	bus := NewMemoryBus()
	attempts := 0

	bus.Subscribe(PlayerLeft, func(ctx context.Context, event Event) error {
		attempts++
		if attempts < 2 {
			return errors.New("transient failure")
		}
		return nil
	})

	pub := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	err := pub.Publish(context.Background(), NewPlayerLeftEvent("100", "Steve", nil, nil))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	pub.Drain()
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestDeadLetterWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	if err != nil {
		t.Fatalf("NewDeadLetterWriter returned error: %v", err)
	}
	defer dlw.Close()

	if err := dlw.Write(NewPlayerLeftEvent("100", "Steve", nil, nil), 5, errors.New("store down")); err != nil {
		t.Errorf("Write returned error: %v", err)
	}
	// A nil last error must not panic and must omit the field.
	if err := dlw.Write(NewPlayerLeftEvent("100", "Steve", nil, nil), 5, nil); err != nil {
		t.Errorf("Write with nil error returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read dead-letter file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 dead-letter entries, got %d", len(lines))
	}

	var first, second DeadLetterEntry
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Failed to decode first entry: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Failed to decode second entry: %v", err)
	}
	if first.LastError != "store down" {
		t.Errorf("Expected last_error 'store down', got %q", first.LastError)
	}
	if second.LastError != "" {
		t.Errorf("Expected empty last_error, got %q", second.LastError)
	}
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	expected := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 32 * time.Second}
	for i, want := range expected {
		if got := CalculateRetryDelay(base, i+1); got != want {
			t.Errorf("attempt %d: expected %v, got %v", i+1, want, got)
		}
	}
}
