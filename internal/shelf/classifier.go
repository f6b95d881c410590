package shelf

import (
	"log/slog"
	"path/filepath"
	"strings"

	"shelves/internal/logging"
)

// Classifier infers a shelf name from a file path. It reads path strings only
// and never raises: any parsing problem resolves to the default shelf.
type Classifier struct {
	baseDir      string
	defaultShelf string
	plausibility Plausibility
	logger       *slog.Logger
}

// NewClassifier builds a classifier. baseDir may be empty, in which case every
// classification uses the positional fallback. defaultShelf defaults to
// DefaultName when empty.
func NewClassifier(baseDir, defaultShelf string, plausibility Plausibility, logger *slog.Logger) *Classifier {
	if strings.TrimSpace(defaultShelf) == "" {
		defaultShelf = DefaultName
	}
	return &Classifier{
		baseDir:      strings.TrimSpace(baseDir),
		defaultShelf: defaultShelf,
		plausibility: plausibility,
		logger:       logging.NewComponentLogger(logger, "classifier"),
	}
}

// DefaultShelf returns the fallback shelf name the classifier resolves to.
func (c *Classifier) DefaultShelf() string {
	return c.defaultShelf
}

// Classify returns the shelf for path: the first directory component below the
// library root when the path resides under it, the positional fallback guess
// otherwise, and the default shelf whenever the inferred name fails the
// plausibility check.
func (c *Classifier) Classify(path string) string {
	if c.baseDir == "" {
		c.logger.Debug("no base directory configured, using fallback detection",
			logging.String(logging.FieldPath, path))
		return c.classifyFallback(path)
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		c.logger.Error("resolve path failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return c.defaultShelf
	}
	absBase, err := filepath.Abs(filepath.Clean(c.baseDir))
	if err != nil {
		c.logger.Error("resolve base directory failed",
			logging.String("base_dir", c.baseDir),
			logging.Error(err))
		return c.defaultShelf
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		c.logger.Debug("path is not under base directory",
			logging.String(logging.FieldPath, path),
			logging.String("base_dir", absBase))
		return c.classifyFallback(path)
	}

	parts := splitComponents(rel)
	if len(parts) <= 1 {
		// File sits directly in the base directory.
		c.logger.Debug("file is in base directory, no shelf",
			logging.String(logging.FieldPath, path))
		return c.defaultShelf
	}

	candidate := parts[0]
	if plausible, reason := c.plausibility.Check(candidate); !plausible {
		logging.WarnWithContext(c.logger, "inferred name does not look like a shelf", "implausible_shelf_name",
			logging.String(logging.FieldShelf, candidate),
			logging.String("reason", reason),
			logging.String(logging.FieldErrorHint, "add the name in settings if it really is a shelf"),
			logging.String(logging.FieldImpact, "falling back to the default shelf"))
		return c.defaultShelf
	}

	c.logger.Debug("confirmed shelf",
		logging.String(logging.FieldShelf, candidate),
		logging.String(logging.FieldPath, path))
	return candidate
}

// classifyFallback guesses the shelf without a base directory, assuming the
// path ends in Shelf/Artist/Album/file.
func (c *Classifier) classifyFallback(path string) string {
	parts := splitComponents(filepath.Clean(path))

	var candidate string
	switch {
	case len(parts) >= 4:
		candidate = parts[len(parts)-4]
	case len(parts) == 3:
		candidate = parts[len(parts)-3]
	default:
		return c.defaultShelf
	}

	plausible, reason := c.plausibility.Check(candidate)
	if !plausible {
		c.logger.Debug("fallback shelf looks suspicious",
			logging.String(logging.FieldShelf, candidate),
			logging.String("reason", reason))
		return c.defaultShelf
	}

	c.logger.Debug("fallback detected shelf", logging.String(logging.FieldShelf, candidate))
	return candidate
}

func splitComponents(path string) []string {
	raw := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	parts := raw[:0]
	for _, part := range raw {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
