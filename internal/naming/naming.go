// Package naming holds the display-name normalization and label formatting
// rules shared by the store search, the lookup service and the menu layer.
package naming

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tolvmar/chestwarden/internal/domain"
)

// Fold case-folds a display name for case-insensitive comparison. A Caser is
// built per call: x/text Casers are stateful and not safe for concurrent use,
// and Fold sits on concurrently exercised paths (store search, legacy scan).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Normalize prepares free-text query input for matching: leading/trailing
// whitespace trimmed, internal runs of whitespace collapsed to one space,
// then case-folded. A blank input normalizes to the empty string.
func Normalize(s string) string {
	return Fold(strings.Join(strings.Fields(s), " "))
}

// ItemLabel renders the row label for one item record: the custom display
// name when set, otherwise the type id title-cased without its namespace.
func ItemLabel(rec domain.ItemRecord) string {
	name := rec.DisplayName
	if name == "" {
		name = TypeLabel(rec.TypeID)
	}
	return fmt.Sprintf("[%d] %s ×%d", rec.Slot, name, rec.Count)
}

// TypeLabel turns "minecraft:oak_planks" into "Oak Planks".
func TypeLabel(typeID string) string {
	name := typeID
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return "Unknown Item"
	}
	return cases.Title(language.Und).String(name)
}
