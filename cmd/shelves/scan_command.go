package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shelves/internal/lifecycle"
	"shelves/internal/votes"
	"shelves/internal/workflow"
)

// audioExtensions are the file types the scan harness feeds through the
// lifecycle hooks.
var audioExtensions = map[string]struct{}{
	".flac": {},
	".mp3":  {},
	".m4a":  {},
	".ogg":  {},
	".opus": {},
	".wav":  {},
}

type scanResult struct {
	Album  string `json:"album_dir"`
	Tracks int    `json:"tracks"`
	Shelf  string `json:"shelf"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var maxAlbums int

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Run a directory tree through the full shelf lifecycle",
		Long: "Walks a directory of music files, groups tracks per album folder, and runs\n" +
			"each group through the file-loaded, metadata-assembly, and file-saved hooks\n" +
			"exactly as the tagging host would, printing the resolved shelf per album.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			root := cfg.Paths.MusicDir
			if len(args) == 1 {
				if root, err = filepath.Abs(args[0]); err != nil {
					return fmt.Errorf("resolve scan root: %w", err)
				}
			}

			// One scan at a time per settings store; concurrent scans
			// would interleave registry writes.
			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "scan.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire scan lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another scan is already running (lock: %s)", lock.Path())
			}
			defer lock.Unlock()

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			reg := ctx.newRegistry(store, logger)
			classifier := ctx.newClassifier(reg, logger)

			var table lifecycle.VoteTable
			if maxAlbums > 0 {
				if table, err = votes.NewBounded(logger, maxAlbums); err != nil {
					return err
				}
			} else {
				table = votes.NewTable(logger)
			}

			adapter := lifecycle.NewAdapter(classifier, reg, table, workflow.FromConfig(cfg), logger)

			albums, err := collectAlbums(root)
			if err != nil {
				return fmt.Errorf("walk %s: %w", root, err)
			}

			results := make([]scanResult, 0, len(albums))
			for _, album := range albums {
				albumID := uuid.NewString()

				for _, path := range album.files {
					adapter.FileLoaded(cmd.Context(), path, albumID)
				}

				metadata := map[string]string{lifecycle.AlbumIDKey: albumID}
				adapter.TrackMetadata(cmd.Context(), albumID, metadata)

				for _, path := range album.files {
					adapter.FileSaved(cmd.Context(), path, albumID)
				}

				display := album.dir
				if rel, relErr := filepath.Rel(root, album.dir); relErr == nil && !strings.HasPrefix(rel, "..") {
					display = rel
				}
				results = append(results, scanResult{
					Album:  display,
					Tracks: len(album.files),
					Shelf:  metadata[lifecycle.TagKey],
				})
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Album, strconv.Itoa(result.Tracks), result.Shelf})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Album", "Tracks", "Shelf"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().IntVar(&maxAlbums, "max-albums", 0, "Cap concurrently tracked albums (0 means unbounded)")
	return cmd
}

type albumGroup struct {
	dir   string
	files []string
}

// collectAlbums walks root and groups audio files by their parent directory,
// the scan harness's stand-in for one release.
func collectAlbums(root string) ([]albumGroup, error) {
	grouped := make(map[string][]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := audioExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		dir := filepath.Dir(path)
		grouped[dir] = append(grouped[dir], path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(grouped))
	for dir := range grouped {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	albums := make([]albumGroup, 0, len(dirs))
	for _, dir := range dirs {
		files := grouped[dir]
		sort.Strings(files)
		albums = append(albums, albumGroup{dir: dir, files: files})
	}
	return albums, nil
}
