// Package logging assembles structured slog loggers and attribute helpers used
// across the shelves components.
//
// It owns the console/JSON handler selection, centralizes level and output
// plumbing, and exposes component-scoped constructors so classifier, registry,
// and vote-table code tag log lines consistently. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
