// Package workflow applies the optional two-stage shelf transition: when a
// file's resolved shelf equals the first stage (typically "Incoming"), the
// name written into metadata becomes the second stage (typically "Standard").
// The transition runs at metadata-write time only; votes always record the
// shelf the path actually implied.
package workflow
