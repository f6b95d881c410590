// Package registry maintains the persistent set of known shelf names.
//
// The set seeds UI suggestions and strengthens the classifier's plausibility
// heuristic: a name the user has registered is never rejected. Reads tolerate
// the legacy comma-joined storage format and recover from malformed values by
// resetting to the built-in defaults; operations never return errors to the
// caller, only log records.
package registry
