package lifecycle

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"shelves/internal/shelf"
	"shelves/internal/votes"
	"shelves/internal/workflow"
)

type recordingShelves struct {
	mu    sync.Mutex
	names []string
}

func (r *recordingShelves) Add(_ context.Context, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
}

func newTestAdapter(stages workflow.Stages) (*Adapter, *recordingShelves, *votes.Table) {
	base := filepath.Join(string(filepath.Separator), "music")
	classifier := shelf.NewClassifier(base, shelf.DefaultName, shelf.Plausibility{
		Defaults: []string{shelf.DefaultName, shelf.IncomingName},
	}, nil)
	shelves := &recordingShelves{}
	table := votes.NewTable(nil)
	return NewAdapter(classifier, shelves, table, stages, nil), shelves, table
}

func trackPath(parts ...string) string {
	all := append([]string{string(filepath.Separator), "music"}, parts...)
	return filepath.Join(all...)
}

func TestFileLoadedVotesAndRegisters(t *testing.T) {
	adapter, shelves, table := newTestAdapter(workflow.Stages{})
	ctx := context.Background()

	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "01.flac"), "album-1")

	if winner, ok := table.Winner("album-1"); !ok || winner != "Incoming" {
		t.Errorf("winner = %q, %v; want Incoming", winner, ok)
	}
	if len(shelves.names) != 1 || shelves.names[0] != "Incoming" {
		t.Errorf("registered shelves = %v, want [Incoming]", shelves.names)
	}
}

func TestFileLoadedWithoutAlbumIDSkipsVote(t *testing.T) {
	adapter, shelves, table := newTestAdapter(workflow.Stages{})
	ctx := context.Background()

	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "01.flac"), "")
	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "02.flac"), "   ")

	if table.Len() != 0 {
		t.Error("no votes should be recorded without an album id")
	}
	if len(shelves.names) != 2 {
		t.Errorf("classification should still register shelves, got %v", shelves.names)
	}
}

func TestTrackMetadataWritesWinner(t *testing.T) {
	adapter, _, _ := newTestAdapter(workflow.Stages{})
	ctx := context.Background()

	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "01.flac"), "album-1")
	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "02.flac"), "album-1")

	metadata := map[string]string{AlbumIDKey: "album-1"}
	adapter.TrackMetadata(ctx, "album-1", metadata)

	if metadata[TagKey] != "Incoming" {
		t.Errorf("metadata[%q] = %q, want Incoming", TagKey, metadata[TagKey])
	}
}

func TestTrackMetadataAppliesWorkflowTransition(t *testing.T) {
	stages := workflow.Stages{Enabled: true, Stage1: "Incoming", Stage2: "Standard"}
	adapter, _, _ := newTestAdapter(stages)
	ctx := context.Background()

	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "01.flac"), "album-1")

	metadata := map[string]string{}
	adapter.TrackMetadata(ctx, "album-1", metadata)

	if metadata[TagKey] != "Standard" {
		t.Errorf("metadata[%q] = %q, want workflow stage 2", TagKey, metadata[TagKey])
	}
}

func TestTrackMetadataUnknownAlbumLeavesMapAlone(t *testing.T) {
	adapter, _, _ := newTestAdapter(workflow.Stages{})

	metadata := map[string]string{}
	adapter.TrackMetadata(context.Background(), "never-voted", metadata)
	if _, ok := metadata[TagKey]; ok {
		t.Error("no shelf should be written without votes")
	}

	adapter.TrackMetadata(context.Background(), "", metadata)
	adapter.TrackMetadata(context.Background(), "album-1", nil)
}

func TestFileSavedClearsVoteState(t *testing.T) {
	adapter, _, table := newTestAdapter(workflow.Stages{})
	ctx := context.Background()

	path := trackPath("Incoming", "Artist", "Album", "01.flac")
	adapter.FileLoaded(ctx, path, "album-1")
	adapter.FileSaved(ctx, path, "album-1")

	if _, ok := table.Winner("album-1"); ok {
		t.Error("vote state should be cleared after save")
	}

	adapter.FileSaved(ctx, path, "")
}

func TestConflictingShelvesResolveByMajority(t *testing.T) {
	adapter, _, _ := newTestAdapter(workflow.Stages{})
	ctx := context.Background()

	adapter.FileLoaded(ctx, trackPath("Incoming", "Artist", "Album", "01.flac"), "album-1")
	adapter.FileLoaded(ctx, trackPath("Standard", "Artist", "Album", "02.flac"), "album-1")
	adapter.FileLoaded(ctx, trackPath("Standard", "Artist", "Album", "03.flac"), "album-1")

	metadata := map[string]string{}
	adapter.TrackMetadata(ctx, "album-1", metadata)
	if metadata[TagKey] != "Standard" {
		t.Errorf("metadata[%q] = %q, want majority shelf Standard", TagKey, metadata[TagKey])
	}
}
