package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tolvmar/chestwarden/internal/event"
	"github.com/tolvmar/chestwarden/internal/live"
	"github.com/tolvmar/chestwarden/internal/logger"
)

// Session event names accepted on the ingest endpoint.
const (
	SessionEventJoined = "joined"
	SessionEventLeft   = "left"
)

// SessionEventRequest is the host adapter's join or leave notification. The
// container contents ride along so the tracker can snapshot a leaving player
// without reaching back into the live runtime.
type SessionEventRequest struct {
	Event      string          `json:"event" validate:"required,oneof=joined left"`
	XUID       string          `json:"xuid" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Name       string          `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Inventory  []live.SlotItem `json:"inventory"`
	EnderChest []live.SlotItem `json:"ender_chest"`
}

// HandleSessionEvent ingests a player join or leave from the host adapter and
// publishes it on the event bus. A resilient publisher accepts immediately and
// retries delivery, so success here means accepted, not persisted.
func HandleSessionEvent(bus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SessionEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode session event request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid session event request", "error", err)
			respondValidationError(w, err)
			return
		}

		var evt event.Event
		switch req.Event {
		case SessionEventJoined:
			evt = event.NewPlayerJoinedEvent(req.XUID, req.Name, req.Inventory, req.EnderChest)
		case SessionEventLeft:
			evt = event.NewPlayerLeftEvent(req.XUID, req.Name, req.Inventory, req.EnderChest)
		}

		if err := bus.Publish(r.Context(), evt); err != nil {
			log.Error("Failed to publish session event", "error", err, "event", req.Event, "xuid", req.XUID)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		log.Info("Session event accepted", "event", req.Event, "xuid", req.XUID, "name", req.Name)
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: "event accepted"})
	}
}
