// Package lifecycle glues the host application's callbacks to the shelf
// components.
//
// The host fires three hooks per file: after a file's tags are read
// (FileLoaded), while per-track metadata is assembled (TrackMetadata), and
// after tags are written back (FileSaved). The adapter translates those into
// classify/vote, winner lookup, and tally cleanup. Every hook is total:
// malformed input is skipped, never escalated, because partial data is normal
// during incremental scanning.
package lifecycle
