package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolvmar/chestwarden/internal/domain"
)

type fakeIdentityStore struct {
	byXUID  map[string]domain.Identity
	results []domain.Identity
	err     error
}

func (s *fakeIdentityStore) UpsertIdentity(ctx context.Context, identity *domain.Identity) error {
	return nil
}

func (s *fakeIdentityStore) MarkOffline(ctx context.Context, xuid string, leaveTime int64) error {
	return nil
}

func (s *fakeIdentityStore) GetIdentity(ctx context.Context, xuid string) (*domain.Identity, error) {
	id, ok := s.byXUID[xuid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &id, nil
}

func (s *fakeIdentityStore) SearchIdentities(ctx context.Context, query string) ([]domain.Identity, error) {
	return s.results, s.err
}

func (s *fakeIdentityStore) ListOnline(ctx context.Context) ([]domain.Identity, error) {
	return nil, nil
}

type fakeFallback struct {
	matches []domain.Identity
	err     error
	calls   int
}

func (f *fakeFallback) FindByDisplayNameSubstring(ctx context.Context, text string) ([]domain.Identity, error) {
	f.calls++
	return f.matches, f.err
}

func TestFindPrefersStore(t *testing.T) {
	store := &fakeIdentityStore{results: []domain.Identity{{XUID: "100", Name: "Steve"}}}
	fallback := &fakeFallback{matches: []domain.Identity{{XUID: "Steve", Name: "Steve"}}}
	svc := NewService(store, fallback)

	result, err := svc.Find(context.Background(), "steve")
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "100", result.Candidates[0].XUID)
	assert.False(t, result.FromFallback)
	assert.Equal(t, 0, fallback.calls, "fallback must not run when the store matches")
}

func TestFindFallsBackWhenStoreEmpty(t *testing.T) {
	store := &fakeIdentityStore{}
	fallback := &fakeFallback{matches: []domain.Identity{{XUID: "OldTimer", Name: "OldTimer"}}}
	svc := NewService(store, fallback)

	result, err := svc.Find(context.Background(), "oldtimer")
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "OldTimer", result.Candidates[0].Name)
	assert.True(t, result.FromFallback)
}

func TestFindFallsBackWhenStoreUnavailable(t *testing.T) {
	store := &fakeIdentityStore{err: domain.ErrStoreUnavailable}
	fallback := &fakeFallback{matches: []domain.Identity{{XUID: "OldTimer", Name: "OldTimer"}}}
	svc := NewService(store, fallback)

	result, err := svc.Find(context.Background(), "oldtimer")
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.True(t, result.FromFallback)
}

func TestFindNilStoreUsesFallbackOnly(t *testing.T) {
	fallback := &fakeFallback{matches: []domain.Identity{{XUID: "Steve", Name: "Steve"}}}
	svc := NewService(nil, fallback)

	result, err := svc.Find(context.Background(), "steve")
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.True(t, result.FromFallback)
}

func TestFindDropsFallbackCandidatesKnownToStore(t *testing.T) {
	store := &fakeIdentityStore{byXUID: map[string]domain.Identity{
		"Tracked": {XUID: "Tracked", Name: "Tracked"},
	}}
	fallback := &fakeFallback{matches: []domain.Identity{
		{XUID: "Tracked", Name: "Tracked"},
		{XUID: "Untracked", Name: "Untracked"},
	}}
	svc := NewService(store, fallback)

	result, err := svc.Find(context.Background(), "track")
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "Untracked", result.Candidates[0].XUID)
}

func TestFindBlankQuery(t *testing.T) {
	store := &fakeIdentityStore{results: []domain.Identity{{XUID: "100", Name: "Steve"}}}
	fallback := &fakeFallback{}
	svc := NewService(store, fallback)

	result, err := svc.Find(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	assert.Equal(t, 0, fallback.calls)
}

func TestFindUnambiguous(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []domain.Identity
		want       bool
	}{
		{
			name:       "single match long query",
			query:      "steve",
			candidates: []domain.Identity{{XUID: "100", Name: "Steve"}},
			want:       true,
		},
		{
			name:       "single match short query",
			query:      "st",
			candidates: []domain.Identity{{XUID: "100", Name: "Steve"}},
			want:       false,
		},
		{
			name:  "multiple matches",
			query: "steve",
			candidates: []domain.Identity{
				{XUID: "100", Name: "Steve"},
				{XUID: "101", Name: "Steven"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeIdentityStore{results: tt.candidates}, nil)
			result, err := svc.Find(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Unambiguous)
		})
	}
}

func TestFindFallbackError(t *testing.T) {
	svc := NewService(nil, &fakeFallback{err: errors.New("disk gone")})

	_, err := svc.Find(context.Background(), "steve")
	assert.Error(t, err)
}

func TestRankCandidates(t *testing.T) {
	now := time.Now().Unix()
	candidates := []domain.Identity{
		{XUID: "1", Name: "TheBobcat"},
		{XUID: "2", Name: "Bob", LastLeave: now - 3600},
		{XUID: "3", Name: "Bobby", LastLeave: now},
		{XUID: "4", Name: "Bob", LastLeave: now},
	}

	rankCandidates("bob", candidates)

	// Exact matches first, newer before older, then prefix, then substring.
	assert.Equal(t, "4", candidates[0].XUID)
	assert.Equal(t, "2", candidates[1].XUID)
	assert.Equal(t, "3", candidates[2].XUID)
	assert.Equal(t, "1", candidates[3].XUID)
}
