package menu

// Minecraft section-sign color tags used on row labels.
const (
	ColorGreen  = "§a"
	ColorYellow = "§e"
	ColorRed    = "§c"
	ColorGray   = "§7"
	ColorAqua   = "§b"
)

// Page titles
const (
	TitleRoot          = "Inventory Manager"
	TitleOnlinePlayers = "Online Players"
	TitleSearch        = "Offline Player Search"
	TitleSearchResults = "Search Results"
	TitleSlotActions   = "Slot Actions"
	TitleVisualView    = "Container View"
	TitleNotice        = "Notice"
	TitleError         = "Error"
)

// Row labels
const (
	LabelOnlinePlayers = "Online Players"
	LabelSearchOffline = "Search Offline Players"
	LabelInventory     = "Inventory"
	LabelEnderChest    = "Ender Chest"
	LabelSlotActions   = "Slot Actions"
	LabelVisualView    = "Visual View"
	LabelTake          = "Take"
	LabelCopy          = "Copy"
	LabelRemove        = "Remove"
	LabelOK            = "OK"
	LabelEmptySlot     = "(empty)"
)

// Body and marker texts
const (
	BodyNoOnlinePlayers = "Nobody is online right now."
	BodyNoItems         = "No items in this container."
	BodyVisualReadOnly  = "Read-only view. Select any row to go back."
	MarkerOnline        = "online"
	MarkerOffline       = "offline"
	MarkerLegacy        = "legacy"
	PromptPlaceholder   = "Player name"
)

// User-facing result messages
const (
	MsgTaken            = "Item moved to your inventory."
	MsgCopied           = "Item copied to your inventory."
	MsgRemoved          = "Item removed."
	MsgNoMatches        = "No matching players found."
	MsgInventoryFull    = "Your inventory is full."
	MsgSlotEmpty        = "Nothing in that slot."
	MsgTargetOffline    = "That player is no longer online."
	MsgStoreUnavailable = "Offline player data is unavailable."
	MsgNotFound         = "No stored data for that player."
	MsgCorruptRecord    = "That player's stored data could not be read."
	MsgInternalError    = "Something went wrong. Check the server log."
)
