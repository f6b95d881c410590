// Package shelf implements the shelf-name rules: directory-safety validation,
// the plausibility heuristic separating organizational folder names from
// artist/album text, and the path classifier that infers a shelf from a file's
// location under the library root.
//
// Everything here is string work on path values; the package never touches the
// filesystem. Classification is total: any parsing problem falls back to the
// configured default shelf and a log record.
package shelf
