package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/live"
)

func enchantedItem() live.Item {
	return live.Item{
		TypeID:      "minecraft:netherite_axe",
		Count:       1,
		Damage:      120,
		DisplayName: "Woodsplitter",
		Lore:        []string{"An old friend", "Handle with care"},
		Enchants:    map[string]int{"efficiency": 5, "mending": 1},
		Unbreakable: true,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	original := enchantedItem()

	rec := EncodeItem(ctx, original, 11)
	assert.Equal(t, 11, rec.Slot)
	assert.Equal(t, []domain.Modifier{
		{Kind: "efficiency", Level: 5},
		{Kind: "mending", Level: 1},
	}, rec.Modifiers)

	decoded, err := DecodeItem(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncodeRoundTripNested(t *testing.T) {
	ctx := context.Background()
	box := live.Item{
		TypeID: "minecraft:shulker_box",
		Count:  1,
		Contents: []live.SlotItem{
			{Index: 5, Item: live.Item{TypeID: "minecraft:arrow", Count: 64}},
			{Index: 1, Item: enchantedItem()},
		},
	}

	rec := EncodeItem(ctx, box, 0)
	require.True(t, rec.HasNested())

	decoded, err := DecodeItem(ctx, rec)
	require.NoError(t, err)
	require.Len(t, decoded.Contents, 2)

	// Nested contents come back ordered by slot.
	assert.Equal(t, 1, decoded.Contents[0].Index)
	assert.Equal(t, "minecraft:netherite_axe", decoded.Contents[0].Item.TypeID)
	assert.Equal(t, "Woodsplitter", decoded.Contents[0].Item.DisplayName)
	assert.Equal(t, map[string]int{"efficiency": 5, "mending": 1}, decoded.Contents[0].Item.Enchants)
	assert.True(t, decoded.Contents[0].Item.Unbreakable)
	assert.Equal(t, 5, decoded.Contents[1].Index)
	assert.Equal(t, 64, decoded.Contents[1].Item.Count)
}

func TestEncodeTruncatesDeeperNesting(t *testing.T) {
	ctx := context.Background()
	inner := live.Item{
		TypeID: "minecraft:white_shulker_box",
		Count:  1,
		Contents: []live.SlotItem{
			{Index: 0, Item: live.Item{TypeID: "minecraft:diamond", Count: 1}},
		},
	}
	outer := live.Item{
		TypeID:   "minecraft:chest",
		Count:    1,
		Contents: []live.SlotItem{{Index: 3, Item: inner}},
	}

	rec := EncodeItem(ctx, outer, 0)
	decoded, err := DecodeItem(ctx, rec)
	require.NoError(t, err)

	require.Len(t, decoded.Contents, 1)
	assert.Equal(t, "minecraft:white_shulker_box", decoded.Contents[0].Item.TypeID)
	assert.Empty(t, decoded.Contents[0].Item.Contents, "grandchild contents are truncated")
}

func TestEncodeClampsOutOfRangeValues(t *testing.T) {
	ctx := context.Background()

	rec := EncodeItem(ctx, live.Item{TypeID: "minecraft:stone", Count: 900}, 0)
	assert.Equal(t, domain.MaxStackSize, rec.Count)

	rec = EncodeItem(ctx, live.Item{TypeID: "minecraft:stone", Count: 0}, 0)
	assert.Equal(t, 1, rec.Count)

	rec = EncodeItem(ctx, live.Item{TypeID: "minecraft:stone", Count: 1, Damage: -4}, 0)
	assert.Equal(t, 0, rec.Damage)
}

func TestDecodeCorruptNestedPayload(t *testing.T) {
	rec := domain.ItemRecord{
		Slot:   0,
		TypeID: "minecraft:chest",
		Count:  1,
		Nested: []byte{0x01, 0x02},
	}

	_, err := DecodeItem(context.Background(), rec)
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}
