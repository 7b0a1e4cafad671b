package menu

import (
	"errors"

	"github.com/tolvmar/chestwarden/internal/domain"
)

// displayMessage maps an action or lookup error to the text shown to the
// operator. Unknown errors collapse to a generic message; the detail stays in
// the log, never on a form.
func displayMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInventoryFull):
		return MsgInventoryFull
	case errors.Is(err, domain.ErrSlotEmpty):
		return MsgSlotEmpty
	case errors.Is(err, domain.ErrTargetOffline):
		return MsgTargetOffline
	case errors.Is(err, domain.ErrStoreUnavailable):
		return MsgStoreUnavailable
	case errors.Is(err, domain.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, domain.ErrCorruptRecord):
		return MsgCorruptRecord
	default:
		return MsgInternalError
	}
}
