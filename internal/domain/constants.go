package domain

// Container dimensions for the player containers tracked by the store.
// The inventory covers hotbar (0-8) and main storage (9-35).
const (
	InventorySize  = 36
	EnderChestSize = 27
)

// MaxStackSize is the store-defined upper bound for a slot count.
const MaxStackSize = 64

// NestedDepthLimit bounds recursive encoding of container-type items to one
// level beyond the top-level item, matching game semantics. Contents past the
// bound are truncated, never fatal.
const NestedDepthLimit = 1
