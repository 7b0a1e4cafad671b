package lookup

import (
	"sort"
	"strings"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/naming"
)

// Match tiers, best first.
const (
	tierExact = iota
	tierPrefix
	tierSubstring
)

func matchTier(norm, name string) int {
	folded := naming.Fold(name)
	switch {
	case folded == norm:
		return tierExact
	case strings.HasPrefix(folded, norm):
		return tierPrefix
	default:
		return tierSubstring
	}
}

// rankCandidates orders candidates the same way the store query does: exact
// match, then prefix, then substring, recency breaking ties within a tier and
// name order breaking remaining ties.
func rankCandidates(norm string, candidates []domain.Identity) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ti, tj := matchTier(norm, candidates[i].Name), matchTier(norm, candidates[j].Name)
		if ti != tj {
			return ti < tj
		}
		si, sj := candidates[i].LastSeen(), candidates[j].LastSeen()
		if si != sj {
			return si > sj
		}
		return candidates[i].Name < candidates[j].Name
	})
}
