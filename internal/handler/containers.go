package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/repository"
)

// HandleContainerRead returns the persisted snapshot for one player container.
// The store may be nil when the process runs in fallback-only mode.
func HandleContainerRead(store repository.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		xuid := chi.URLParam(r, "xuid")
		kind := domain.ContainerKind(chi.URLParam(r, "kind"))
		if xuid == "" || !kind.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if store == nil {
			respondServiceError(w, domain.ErrStoreUnavailable)
			return
		}

		items, err := store.ReadContainer(r.Context(), xuid, kind)
		if err != nil {
			log.Warn("Container read failed", "error", err, "xuid", xuid, "kind", kind)
			respondServiceError(w, err)
			return
		}
		if items == nil {
			items = []domain.ItemRecord{}
		}

		respondJSON(w, http.StatusOK, domain.ContainerSnapshot{
			XUID:  xuid,
			Kind:  kind,
			Items: items,
		})
	}
}
