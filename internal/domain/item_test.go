package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemRecordEqual(t *testing.T) {
	base := ItemRecord{
		Slot:      3,
		TypeID:    "minecraft:bow",
		Count:     1,
		Modifiers: []Modifier{{Kind: "power", Level: 4}, {Kind: "flame", Level: 1}},
	}

	reordered := base
	reordered.Modifiers = []Modifier{{Kind: "flame", Level: 1}, {Kind: "power", Level: 4}}
	assert.True(t, base.Equal(reordered), "modifier order must not matter")

	changed := base
	changed.Modifiers = []Modifier{{Kind: "power", Level: 5}, {Kind: "flame", Level: 1}}
	assert.False(t, base.Equal(changed))

	otherSlot := base
	otherSlot.Slot = 4
	assert.False(t, base.Equal(otherSlot))

	nested := base
	nested.Nested = []byte{1, 2, 3}
	assert.False(t, base.Equal(nested))
}

func TestSortRecords(t *testing.T) {
	records := []ItemRecord{{Slot: 9}, {Slot: 0}, {Slot: 4}}
	SortRecords(records)
	assert.Equal(t, 0, records[0].Slot)
	assert.Equal(t, 4, records[1].Slot)
	assert.Equal(t, 9, records[2].Slot)
}

func TestContainerKind(t *testing.T) {
	assert.True(t, KindInventory.Valid())
	assert.True(t, KindEnderChest.Valid())
	assert.False(t, ContainerKind("backpack").Valid())

	assert.Equal(t, InventorySize, KindInventory.Size())
	assert.Equal(t, EnderChestSize, KindEnderChest.Size())
}
