// Package tracker subscribes to player session lifecycle events and keeps the
// durable store in sync: identity rows on join and leave, container snapshots
// at both session boundaries.
package tracker

import (
	"context"
	"fmt"

	"github.com/tolvmar/chestwarden/internal/codec"
	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/event"
	"github.com/tolvmar/chestwarden/internal/live"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/metrics"
	"github.com/tolvmar/chestwarden/internal/repository"
)

// Tracker persists session state transitions. With a nil store every event is
// acknowledged and dropped with a warning, so a store outage degrades the
// snapshots without blocking the host's join and leave flow.
type Tracker struct {
	store repository.Store
}

// New creates a Tracker backed by the durable store.
func New(store repository.Store) *Tracker {
	return &Tracker{store: store}
}

// Register subscribes the tracker's handlers on the bus.
func (t *Tracker) Register(bus event.Bus) {
	bus.Subscribe(event.PlayerJoined, t.handleJoin)
	bus.Subscribe(event.PlayerLeft, t.handleLeave)
}

func (t *Tracker) handleJoin(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.PlayerSessionPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode join payload: %w", err)
	}
	if t.store == nil {
		log.Warn("store unavailable, join not persisted", "xuid", payload.XUID)
		return nil
	}

	identity := &domain.Identity{
		XUID:     payload.XUID,
		Name:     payload.Name,
		LastJoin: payload.Timestamp,
		Online:   true,
	}
	if err := t.store.UpsertIdentity(ctx, identity); err != nil {
		return fmt.Errorf("failed to record join: %w", err)
	}
	if err := t.saveSnapshots(ctx, payload); err != nil {
		return err
	}

	log.Info("player joined", "xuid", payload.XUID, "name", payload.Name)
	return nil
}

func (t *Tracker) handleLeave(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.PlayerSessionPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode leave payload: %w", err)
	}
	if t.store == nil {
		log.Warn("store unavailable, leave not persisted", "xuid", payload.XUID)
		return nil
	}

	// Snapshots first: if the snapshot write fails the identity stays
	// online and the whole event is retried, rather than marking a player
	// offline with stale container rows.
	if err := t.saveSnapshots(ctx, payload); err != nil {
		return err
	}
	if err := t.store.MarkOffline(ctx, payload.XUID, payload.Timestamp); err != nil {
		return fmt.Errorf("failed to record leave: %w", err)
	}

	log.Info("player left", "xuid", payload.XUID, "name", payload.Name)
	return nil
}

func (t *Tracker) saveSnapshots(ctx context.Context, payload event.PlayerSessionPayloadV1) error {
	if err := t.saveContainer(ctx, payload.XUID, domain.KindInventory, payload.Inventory); err != nil {
		return err
	}
	return t.saveContainer(ctx, payload.XUID, domain.KindEnderChest, payload.EnderChest)
}

func (t *Tracker) saveContainer(ctx context.Context, xuid string, kind domain.ContainerKind, contents []live.SlotItem) error {
	records := make([]domain.ItemRecord, 0, len(contents))
	for _, si := range contents {
		records = append(records, codec.EncodeItem(ctx, si.Item, si.Index))
	}
	if err := t.store.ReplaceContainer(ctx, xuid, kind, records); err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", kind, err)
	}
	metrics.SnapshotSavesTotal.WithLabelValues(string(kind)).Inc()
	return nil
}
