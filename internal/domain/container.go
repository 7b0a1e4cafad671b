package domain

// ContainerKind identifies one of the two container categories tracked per
// identity.
type ContainerKind string

const (
	KindInventory  ContainerKind = "inventory"
	KindEnderChest ContainerKind = "ender_chest"
)

// Valid reports whether the kind is one of the tracked categories.
func (k ContainerKind) Valid() bool {
	return k == KindInventory || k == KindEnderChest
}

// Size returns the slot count of the kind's container.
func (k ContainerKind) Size() int {
	if k == KindEnderChest {
		return EnderChestSize
	}
	return InventorySize
}

// ContainerSnapshot is the full set of occupied-slot records for one identity
// and container kind at last save. Items are ordered by slot ascending and
// unique per slot; an empty slot has no record.
type ContainerSnapshot struct {
	XUID  string        `json:"xuid"`
	Kind  ContainerKind `json:"kind"`
	Items []ItemRecord  `json:"items"`
}
