// Package config loads, normalizes, and validates shelves configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI and the lifecycle adapter need: the library root used for shelf
// classification, built-in shelf names, workflow stages, and the title
// cleaner settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
