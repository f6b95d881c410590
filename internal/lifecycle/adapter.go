package lifecycle

import (
	"context"
	"log/slog"
	"strings"

	"shelves/internal/logging"
	"shelves/internal/shelf"
	"shelves/internal/workflow"
)

// TagKey is the metadata key the resolved shelf is written into.
const TagKey = "shelf"

// AlbumIDKey is the metadata key carrying the host's release identifier.
const AlbumIDKey = "musicbrainz_albumid"

// VoteTable is the per-album vote aggregation the adapter drives.
type VoteTable interface {
	Vote(albumID, shelfName string)
	Winner(albumID string) (string, bool)
	Clear(albumID string)
}

// KnownShelves records every shelf the classifier confirms.
type KnownShelves interface {
	Add(ctx context.Context, name string)
}

// Adapter wires host callbacks to the classifier, registry, and vote table.
// Construct one at startup and hand it to the host; it is the sole caller of
// the vote table.
type Adapter struct {
	classifier *shelf.Classifier
	shelves    KnownShelves
	votes      VoteTable
	stages     workflow.Stages
	logger     *slog.Logger
}

// NewAdapter builds the lifecycle adapter.
func NewAdapter(classifier *shelf.Classifier, shelves KnownShelves, votes VoteTable, stages workflow.Stages, logger *slog.Logger) *Adapter {
	return &Adapter{
		classifier: classifier,
		shelves:    shelves,
		votes:      votes,
		stages:     stages,
		logger:     logging.NewComponentLogger(logger, "lifecycle"),
	}
}

// FileLoaded handles the post-scan hook: classify the path, remember the
// shelf, and cast a vote when the file carries an album id.
func (a *Adapter) FileLoaded(ctx context.Context, path, albumID string) {
	shelfName := a.classifier.Classify(path)
	a.shelves.Add(ctx, shelfName)
	a.logger.Debug("classified file",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldShelf, shelfName))

	albumID = strings.TrimSpace(albumID)
	if albumID == "" {
		return
	}
	a.votes.Vote(albumID, shelfName)
}

// TrackMetadata handles the metadata-assembly hook: write the album's winning
// shelf into the track metadata, applying the workflow transition.
func (a *Adapter) TrackMetadata(ctx context.Context, albumID string, metadata map[string]string) {
	albumID = strings.TrimSpace(albumID)
	if albumID == "" || metadata == nil {
		return
	}

	winner, ok := a.votes.Winner(albumID)
	if !ok {
		return
	}

	shelfName := a.stages.Apply(winner)
	if shelfName != winner {
		a.logger.Debug("applied workflow transition",
			logging.String(logging.FieldAlbumID, albumID),
			logging.String("from", winner),
			logging.String("to", shelfName))
	}

	metadata[TagKey] = shelfName
	a.logger.Debug("set shelf on track",
		logging.String(logging.FieldAlbumID, albumID),
		logging.String(logging.FieldShelf, shelfName))
}

// FileSaved handles the post-save hook: the album's processing session is
// complete, so drop its vote state.
func (a *Adapter) FileSaved(ctx context.Context, path, albumID string) {
	albumID = strings.TrimSpace(albumID)
	if albumID == "" {
		return
	}
	a.votes.Clear(albumID)
	a.logger.Debug("cleared album vote state",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldAlbumID, albumID))
}
