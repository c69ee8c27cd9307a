package board

import (
	"time"

	"github.com/hayati-app/hayati/internal/model"
	"github.com/hayati-app/hayati/internal/store"
)

// MatchCache is the persisted result of a match lookup. A nil Match
// with a non-zero FetchedAt means the lookup ran and found nothing
// scheduled; that answer is cached too.
type MatchCache struct {
	Match     *model.Match `json:"match"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// CachedMatch returns the cached lookup result if it is younger than
// ttl. The second return reports whether the cache was usable.
func (b *Board) CachedMatch(ttl time.Duration) (MatchCache, bool) {
	mc := store.Load(b.store, store.KeyNextMatch, MatchCache{})
	if mc.FetchedAt.IsZero() || b.now().Sub(mc.FetchedAt) > ttl {
		return MatchCache{}, false
	}
	// A kickoff in the past is stale no matter how fresh the fetch.
	if mc.Match != nil && !mc.Match.Kickoff.After(b.now()) {
		return MatchCache{}, false
	}
	return mc, true
}

// SaveMatch caches a lookup result, including the no-match answer.
func (b *Board) SaveMatch(m *model.Match) error {
	return store.Save(b.store, store.KeyNextMatch, MatchCache{Match: m, FetchedAt: b.now()})
}
