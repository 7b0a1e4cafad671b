package handler

import (
	"net/http"
	"strings"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/lookup"
)

// maxQueryLength bounds the search fragment so the folded LIKE pattern stays
// cheap.
const maxQueryLength = 100

// PlayerSummary is one search candidate.
type PlayerSummary struct {
	XUID     string `json:"xuid"`
	Name     string `json:"name"`
	Online   bool   `json:"online"`
	LastSeen int64  `json:"last_seen,omitempty"`
}

// PlayerSearchResponse is the ranked candidate list for a name fragment.
type PlayerSearchResponse struct {
	Query        string          `json:"query"`
	Candidates   []PlayerSummary `json:"candidates"`
	FromFallback bool            `json:"from_fallback"`
	Unambiguous  bool            `json:"unambiguous"`
}

// HandlePlayerSearch resolves a partial player name into ranked candidates.
func HandlePlayerSearch(finder lookup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			respondError(w, http.StatusBadRequest, "query parameter q is required")
			return
		}
		if len(query) > maxQueryLength {
			respondError(w, http.StatusBadRequest, "query too long")
			return
		}

		result, err := finder.Find(r.Context(), query)
		if err != nil {
			log.Error("Player search failed", "error", err, "query", query)
			respondServiceError(w, err)
			return
		}

		resp := PlayerSearchResponse{
			Query:        query,
			Candidates:   make([]PlayerSummary, 0, len(result.Candidates)),
			FromFallback: result.FromFallback,
			Unambiguous:  result.Unambiguous,
		}
		for _, c := range result.Candidates {
			resp.Candidates = append(resp.Candidates, summarize(c))
		}

		log.Debug("Player search completed",
			"query", query,
			"candidates", len(resp.Candidates),
			"from_fallback", resp.FromFallback)

		respondJSON(w, http.StatusOK, resp)
	}
}

func summarize(identity domain.Identity) PlayerSummary {
	return PlayerSummary{
		XUID:     identity.XUID,
		Name:     identity.Name,
		Online:   identity.Online,
		LastSeen: identity.LastSeen(),
	}
}
