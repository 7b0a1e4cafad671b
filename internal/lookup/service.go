// Package lookup resolves partial player names into ranked identity
// candidates, preferring the durable store and falling back to the legacy
// record directory when the store has nothing.
package lookup

import (
	"context"
	"unicode/utf8"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/naming"
	"github.com/tolvmar/chestwarden/internal/repository"
)

// unambiguousMinRunes is the shortest normalized query a single match may
// auto-resolve from. Shorter fragments match too loosely to trust.
const unambiguousMinRunes = 3

// Fallback searches the legacy record directory by display name.
type Fallback interface {
	FindByDisplayNameSubstring(ctx context.Context, text string) ([]domain.Identity, error)
}

// Result is one resolved lookup.
type Result struct {
	Candidates []domain.Identity
	// FromFallback marks candidates read from the legacy directory rather
	// than the durable store.
	FromFallback bool
	// Unambiguous is set when the single candidate may be opened without
	// a confirmation step.
	Unambiguous bool
}

// Service resolves player name fragments.
type Service interface {
	Find(ctx context.Context, query string) (Result, error)
}

type service struct {
	store    repository.Identity
	fallback Fallback
}

// NewService creates a lookup service. Either collaborator may be nil: a nil
// store resolves through the fallback only, a nil fallback through the store
// only.
func NewService(store repository.Identity, fallback Fallback) Service {
	return &service{store: store, fallback: fallback}
}

// Find returns ranked candidates for a name fragment. A blank query resolves
// to an empty result. The fallback is consulted only when the store yields
// nothing, and fallback candidates already known to the store are dropped so
// a player never appears twice under two sources.
func (s *service) Find(ctx context.Context, query string) (Result, error) {
	log := logger.FromContext(ctx)

	norm := naming.Normalize(query)
	if norm == "" {
		return Result{}, nil
	}

	if s.store != nil {
		candidates, err := s.store.SearchIdentities(ctx, query)
		if err != nil {
			log.Warn("store search failed, trying legacy fallback", "error", err)
		} else if len(candidates) > 0 {
			return s.finish(norm, candidates, false), nil
		}
	}

	if s.fallback == nil {
		return Result{}, nil
	}
	candidates, err := s.fallback.FindByDisplayNameSubstring(ctx, query)
	if err != nil {
		return Result{}, err
	}
	candidates = s.dropKnown(ctx, candidates)
	rankCandidates(norm, candidates)
	return s.finish(norm, candidates, true), nil
}

func (s *service) finish(norm string, candidates []domain.Identity, fromFallback bool) Result {
	if len(candidates) == 0 {
		return Result{}
	}
	return Result{
		Candidates:   candidates,
		FromFallback: fromFallback,
		Unambiguous:  len(candidates) == 1 && utf8.RuneCountInString(norm) >= unambiguousMinRunes,
	}
}

// dropKnown removes fallback candidates whose key the store already tracks;
// the store said nothing matched the query, so a tracked identity surfacing
// through its record file would only duplicate a ruled-out player.
func (s *service) dropKnown(ctx context.Context, candidates []domain.Identity) []domain.Identity {
	if s.store == nil {
		return candidates
	}
	kept := candidates[:0]
	for _, c := range candidates {
		if _, err := s.store.GetIdentity(ctx, c.XUID); err == nil {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
