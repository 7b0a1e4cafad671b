// Package live defines the narrow boundary to the host runtime's container
// API. The live container is exclusively owned by the host; this core never
// caches slot contents across calls and always re-reads to avoid staleness
// against concurrent mutation by the player.
package live

import "github.com/tolvmar/chestwarden/internal/domain"

// Item is the host runtime's in-memory item representation as exposed through
// the get/set-slot interface.
type Item struct {
	TypeID      string         `json:"type_id"`
	Count       int            `json:"count"`
	Damage      int            `json:"damage,omitempty"`
	DisplayName string         `json:"display_name,omitempty"`
	Lore        []string       `json:"lore,omitempty"`
	Enchants    map[string]int `json:"enchants,omitempty"`
	Unbreakable bool           `json:"unbreakable,omitempty"`
	// Contents is populated for container-type items and holds the
	// sub-container slots in order.
	Contents []SlotItem `json:"contents,omitempty"`
}

// SlotItem pairs an item with the slot index it occupies.
type SlotItem struct {
	Index int  `json:"index"`
	Item  Item `json:"item"`
}

// Container is the live-game collaborator. A nil item stands for an empty
// slot on both the read and write side.
type Container interface {
	GetSlot(entityID string, kind domain.ContainerKind, index int) (*Item, error)
	SetSlot(entityID string, kind domain.ContainerKind, index int, item *Item) error
	IsConnected(entityID string) bool
}
