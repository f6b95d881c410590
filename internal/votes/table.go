package votes

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"shelves/internal/logging"
)

// tally holds the per-album vote state.
type tally struct {
	counts map[string]int
	winner string
}

// apply records one vote for shelfName and updates the cached winner. The
// shelf just voted takes the win whenever its count reaches the current
// maximum, so ties resolve to the last name to reach the top count.
func (t *tally) apply(shelfName string) {
	t.counts[shelfName]++
	if t.winner == "" || t.counts[shelfName] >= t.counts[t.winner] {
		t.winner = shelfName
	}
}

// describe renders the full tally for conflict warnings, highest count first.
func (t *tally) describe() string {
	names := make([]string, 0, len(t.counts))
	for name := range t.counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if t.counts[names[i]] != t.counts[names[j]] {
			return t.counts[names[i]] > t.counts[names[j]]
		}
		return names[i] < names[j]
	})
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, t.counts[name]))
	}
	return strings.Join(parts, ", ")
}

// Table aggregates shelf votes per album. It is safe for concurrent use from
// multiple host callbacks; every read-modify-write runs under one table-wide
// lock, which is cheap because vote bodies are string operations only.
type Table struct {
	logger *slog.Logger

	mu      sync.Mutex
	tallies map[string]*tally
}

// NewTable creates an empty vote table.
func NewTable(logger *slog.Logger) *Table {
	return &Table{
		logger:  logging.NewComponentLogger(logger, "votes"),
		tallies: make(map[string]*tally),
	}
}

// Vote records one shelf vote for the album. Empty or whitespace-only shelf
// names and album ids are ignored. When the album's tally holds more than one
// distinct shelf, a warning lists all counts and the chosen winner: the signal
// that a release straddles two organizational folders.
func (v *Table) Vote(albumID, shelfName string) {
	if strings.TrimSpace(albumID) == "" || strings.TrimSpace(shelfName) == "" {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.tallies[albumID]
	if !ok {
		entry = &tally{counts: make(map[string]int)}
		v.tallies[albumID] = entry
	}
	entry.apply(shelfName)

	if len(entry.counts) > 1 {
		logging.WarnWithContext(v.logger, "album has files from different shelves", "shelf_vote_conflict",
			logging.String(logging.FieldAlbumID, albumID),
			logging.String("votes", entry.describe()),
			logging.String(logging.FieldShelf, entry.winner),
			logging.String(logging.FieldErrorHint, "the release spans more than one shelf folder"),
			logging.String(logging.FieldImpact, "all tracks will be tagged with the winning shelf"))
	}
}

// Winner returns the album's current winning shelf, or false when no votes
// have been recorded for the album.
func (v *Table) Winner(albumID string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.tallies[albumID]
	if !ok {
		return "", false
	}
	return entry.winner, true
}

// Clear removes all vote state for the album. The lifecycle adapter calls this
// once the album's processing session completes; without it the entry lives
// for the rest of the process.
func (v *Table) Clear(albumID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.tallies, albumID)
}

// Len reports how many albums currently hold vote state.
func (v *Table) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.tallies)
}
