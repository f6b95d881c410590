// Package main hosts the shelves CLI entrypoint and command graph.
//
// The Cobra-based command tree exercises the library outside the tagging
// host: classifying paths, scanning a directory tree through the full
// lifecycle hooks, maintaining the known-shelf registry, cleaning album
// titles, and scaffolding configuration. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
