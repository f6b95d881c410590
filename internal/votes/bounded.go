package votes

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"shelves/internal/logging"
)

// Bounded is a vote table with an LRU cap on tracked albums. It exists for
// hosts that may abandon albums mid-session and never fire the save event;
// the unbounded Table remains the default because eviction can silently drop
// votes for a still-active album.
type Bounded struct {
	logger *slog.Logger

	mu     sync.Mutex
	albums *lru.Cache[string, *tally]
}

// NewBounded creates a vote table that tracks at most maxAlbums albums,
// evicting the least recently touched tally when the cap is exceeded.
func NewBounded(logger *slog.Logger, maxAlbums int) (*Bounded, error) {
	if maxAlbums < 1 {
		return nil, fmt.Errorf("votes: max albums must be positive, got %d", maxAlbums)
	}
	logger = logging.NewComponentLogger(logger, "votes")

	cache, err := lru.NewWithEvict[string, *tally](maxAlbums, func(albumID string, entry *tally) {
		logger.Debug("evicted album vote state",
			logging.String(logging.FieldAlbumID, albumID),
			logging.String(logging.FieldShelf, entry.winner))
	})
	if err != nil {
		return nil, fmt.Errorf("votes: create lru: %w", err)
	}

	return &Bounded{logger: logger, albums: cache}, nil
}

// Vote behaves like Table.Vote, additionally refreshing the album's LRU slot.
func (b *Bounded) Vote(albumID, shelfName string) {
	if strings.TrimSpace(albumID) == "" || strings.TrimSpace(shelfName) == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.albums.Get(albumID)
	if !ok {
		entry = &tally{counts: make(map[string]int)}
	}
	entry.apply(shelfName)
	b.albums.Add(albumID, entry)

	if len(entry.counts) > 1 {
		logging.WarnWithContext(b.logger, "album has files from different shelves", "shelf_vote_conflict",
			logging.String(logging.FieldAlbumID, albumID),
			logging.String("votes", entry.describe()),
			logging.String(logging.FieldShelf, entry.winner),
			logging.String(logging.FieldErrorHint, "the release spans more than one shelf folder"),
			logging.String(logging.FieldImpact, "all tracks will be tagged with the winning shelf"))
	}
}

// Winner returns the album's current winning shelf without refreshing its LRU
// slot; reads during metadata assembly should not keep stale albums alive.
func (b *Bounded) Winner(albumID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.albums.Peek(albumID)
	if !ok {
		return "", false
	}
	return entry.winner, true
}

// Clear removes all vote state for the album.
func (b *Bounded) Clear(albumID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.albums.Remove(albumID)
}

// Len reports how many albums currently hold vote state.
func (b *Bounded) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.albums.Len()
}
