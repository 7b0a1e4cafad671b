package legacy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tolvmar/chestwarden/internal/codec"
	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/metrics"
	"github.com/tolvmar/chestwarden/internal/naming"
)

const (
	// decodeCacheSize bounds the number of decoded records kept around
	// between menu interactions; the directory scan itself is O(records)
	// and acceptable because this path is only reached when the durable
	// store has no match.
	decodeCacheSize = 256
	decodeCacheTTL  = 30 * time.Second
)

// Reader resolves offline identities through the legacy on-disk record
// format. It never writes; a record that fails to decode is skipped with a
// warning and the scan continues.
type Reader struct {
	src   RecordSource
	cache *expirable.LRU[string, []domain.ItemRecord]
}

// NewReader creates a Reader over a record source.
func NewReader(src RecordSource) *Reader {
	return &Reader{
		src:   src,
		cache: expirable.NewLRU[string, []domain.ItemRecord](decodeCacheSize, nil, decodeCacheTTL),
	}
}

// FindByIdentityKey decodes the legacy record for one identity key.
// domain.ErrNotFound when no record exists.
func (r *Reader) FindByIdentityKey(ctx context.Context, key string) ([]domain.ItemRecord, error) {
	if records, ok := r.cache.Get(key); ok {
		return records, nil
	}

	keys, err := r.src.ListRecordKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy records: %w", err)
	}
	found := false
	for _, k := range keys {
		if k == key {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: legacy record %s", domain.ErrNotFound, key)
	}

	return r.decode(ctx, key)
}

// decode reads and decodes one record already known to exist, populating the
// cache on success.
func (r *Reader) decode(ctx context.Context, key string) ([]domain.ItemRecord, error) {
	raw, err := r.src.ReadRecord(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy record %s: %w", key, err)
	}
	records, err := codec.DecodeLegacy(ctx, raw)
	if err != nil {
		metrics.CorruptRecordsTotal.Inc()
		return nil, err
	}
	r.cache.Add(key, records)
	return records, nil
}

// FindByDisplayNameSubstring scans the record directory for keys whose
// display name contains the normalized text. Legacy records carry no
// separate display name, so the record key doubles as the name. Results are
// ordered by name.
func (r *Reader) FindByDisplayNameSubstring(ctx context.Context, text string) ([]domain.Identity, error) {
	log := logger.FromContext(ctx)

	norm := naming.Normalize(text)
	if norm == "" {
		return nil, nil
	}

	metrics.FallbackScansTotal.Inc()
	keys, err := r.src.ListRecordKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to scan legacy records: %w", err)
	}

	var matches []domain.Identity
	for _, key := range keys {
		if !strings.Contains(naming.Fold(key), norm) {
			continue
		}
		// Decode the record so corrupt entries never surface as
		// candidates the menu cannot open. The key came from the
		// listing above, so decode directly instead of re-listing.
		if _, ok := r.cache.Get(key); !ok {
			if _, err := r.decode(ctx, key); err != nil {
				log.Warn("skipping unreadable legacy record", "key", key, "error", err)
				continue
			}
		}
		matches = append(matches, domain.Identity{XUID: key, Name: key})
	}
	return matches, nil
}
