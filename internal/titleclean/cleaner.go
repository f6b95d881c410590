package titleclean

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"shelves/internal/config"
	"shelves/internal/logging"
)

// DefaultPattern matches trailing runs of soundtrack indicator words,
// optionally introduced by a separator or bracket.
const DefaultPattern = `(\s*(?:(?::|-|–|—|\(|\[)\s*)?(\b(?:Original|Album|Movie|Motion|Picture|Soundtrack|Score|OST|Music|Edition|Inspired|by|from|the|TV|Series|Video|Game|Film|Show)\b)+(?:\)|\])?\s*)+$`

// Cleaner removes soundtrack suffixes from album titles.
type Cleaner struct {
	re              *regexp.Regexp
	onlySoundtracks bool
	whitelist       map[string]struct{}
	logger          *slog.Logger

	// disabled turns Clean into a pass-through. Set only by NewFromConfig
	// when the user has switched the cleaner off.
	disabled bool
}

// Options configures a Cleaner. An empty Pattern selects DefaultPattern.
type Options struct {
	Pattern         string
	OnlySoundtracks bool
	Whitelist       []string
	Logger          *slog.Logger
}

// New builds a cleaner, returning an error when the pattern does not compile.
func New(opts Options) (*Cleaner, error) {
	pattern := strings.TrimSpace(opts.Pattern)
	if pattern == "" {
		pattern = DefaultPattern
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compile title pattern: %w", err)
	}

	whitelist := make(map[string]struct{}, len(opts.Whitelist))
	for _, title := range opts.Whitelist {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		whitelist[normalizeTitle(title)] = struct{}{}
	}

	return &Cleaner{
		re:              re,
		onlySoundtracks: opts.OnlySoundtracks,
		whitelist:       whitelist,
		logger:          logging.NewComponentLogger(opts.Logger, "titleclean"),
	}, nil
}

// NewFromConfig builds a cleaner from application configuration. A configured
// pattern that does not compile falls back to the built-in default with an
// error log instead of failing startup.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) *Cleaner {
	opts := Options{Logger: logger, OnlySoundtracks: true}
	if cfg != nil {
		opts.Pattern = cfg.TitleCleaner.Pattern
		opts.OnlySoundtracks = cfg.TitleCleaner.OnlySoundtracks
		opts.Whitelist = cfg.TitleCleaner.Whitelist
	}

	cleaner, err := New(opts)
	if err == nil {
		if cfg != nil && !cfg.TitleCleaner.Enabled {
			cleaner.disabled = true
		}
		return cleaner
	}

	logging.NewComponentLogger(logger, "titleclean").Error("configured pattern invalid, using built-in default",
		logging.Error(err),
		logging.String("pattern", opts.Pattern))

	opts.Pattern = ""
	cleaner, fallbackErr := New(opts)
	if fallbackErr != nil {
		// DefaultPattern is a compile-time constant known to be valid.
		panic(fallbackErr)
	}
	if cfg != nil && !cfg.TitleCleaner.Enabled {
		cleaner.disabled = true
	}
	return cleaner
}

// Clean returns the cleaned title and whether it changed. Whitelisted titles
// and, when only-soundtracks mode is on, releases without a soundtrack type
// pass through untouched.
func (c *Cleaner) Clean(title string, releaseTypes []string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" || c.disabled {
		return title, false
	}

	if _, listed := c.whitelist[normalizeTitle(title)]; listed {
		c.logger.Debug("album title is whitelisted, skipping", logging.String("album", title))
		return title, false
	}

	if c.onlySoundtracks && !isSoundtrack(releaseTypes) {
		return title, false
	}

	cleaned := c.re.ReplaceAllString(title, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" || cleaned == title {
		return title, false
	}

	c.logger.Debug("cleaned album title",
		logging.String("album", title),
		logging.String("cleaned", cleaned))
	return cleaned, true
}

// Apply rewrites the album title inside an assembled metadata map, the way
// the host invokes the cleaner during album metadata assembly.
func (c *Cleaner) Apply(metadata map[string]string) {
	title, ok := metadata["album"]
	if !ok {
		return
	}

	var releaseTypes []string
	if raw, ok := metadata["releasetype"]; ok {
		releaseTypes = strings.Split(raw, ";")
	}

	if cleaned, changed := c.Clean(title, releaseTypes); changed {
		metadata["album"] = cleaned
	}
}

func isSoundtrack(releaseTypes []string) bool {
	for _, rt := range releaseTypes {
		if strings.Contains(strings.ToLower(rt), "soundtrack") {
			return true
		}
	}
	return false
}

func normalizeTitle(title string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(title)))
}
