// Package settings persists plugin settings in SQLite as a flat key/value
// table, standing in for the host application's configuration subsystem.
//
// Values are opaque strings. Current writers store list-shaped values as JSON
// arrays, but readers must tolerate legacy comma-joined plain strings; that
// tolerance lives in the consumers (see internal/registry), not here. Each
// Get/Set is a single atomic statement; the store does no cross-key
// transactions.
package settings
