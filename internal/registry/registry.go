package registry

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"shelves/internal/logging"
	"shelves/internal/settings"
	"shelves/internal/shelf"
)

// Registry is the append-only set of shelf names the system has seen or the
// user has defined, persisted through the settings store.
type Registry struct {
	store    *settings.Store
	defaults []string
	logger   *slog.Logger
}

// New builds a registry. defaults are the names returned when nothing is
// stored yet or the stored value is unusable; typically the workflow stage
// shelves.
func New(store *settings.Store, defaults []string, logger *slog.Logger) *Registry {
	cp := make([]string, len(defaults))
	copy(cp, defaults)
	return &Registry{
		store:    store,
		defaults: cp,
		logger:   logging.NewComponentLogger(logger, "registry"),
	}
}

// List returns the known shelf names, deduplicated and filtered through name
// validation. Hard-invalid entries are dropped with a warning; entries that
// only carry a warning are kept. No ordering is guaranteed; callers sort for
// display.
func (r *Registry) List(ctx context.Context) []string {
	names := r.load(ctx)

	seen := make(map[string]struct{}, len(names))
	valid := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		ok, message := shelf.ValidateName(name)
		if !ok {
			logging.WarnWithContext(r.logger, "ignoring invalid stored shelf", "invalid_known_shelf",
				logging.String(logging.FieldShelf, name),
				logging.String("reason", message),
				logging.String(logging.FieldImpact, "the name is dropped from the known list"))
			continue
		}
		seen[name] = struct{}{}
		valid = append(valid, name)
	}
	return valid
}

// Contains reports whether name is in the known set.
func (r *Registry) Contains(ctx context.Context, name string) bool {
	for _, known := range r.List(ctx) {
		if known == name {
			return true
		}
	}
	return false
}

// Add inserts name if absent and persists the updated set. Empty or
// whitespace-only names are ignored. Adding an existing name is a no-op.
func (r *Registry) Add(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	names := r.List(ctx)
	for _, known := range names {
		if known == name {
			return
		}
	}

	names = append(names, name)
	r.persist(ctx, names)
	r.logger.Debug("added shelf to known shelves", logging.String(logging.FieldShelf, name))
}

// Remove deletes name from the set if present and persists the result.
func (r *Registry) Remove(ctx context.Context, name string) {
	names := r.List(ctx)
	kept := names[:0]
	removed := false
	for _, known := range names {
		if known == name {
			removed = true
			continue
		}
		kept = append(kept, known)
	}
	if !removed {
		return
	}

	r.persist(ctx, kept)
	r.logger.Debug("removed shelf from known shelves", logging.String(logging.FieldShelf, name))
}

// load reads the raw stored list, handling the legacy comma-joined format and
// recovering from malformed values.
func (r *Registry) load(ctx context.Context) []string {
	raw, ok, err := r.store.Get(ctx, settings.KeyKnownShelves)
	if err != nil {
		r.logger.Error("read known shelves failed, using defaults", logging.Error(err))
		return r.defaultNames()
	}
	if !ok {
		return r.defaultNames()
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return r.defaultNames()
	}

	if strings.HasPrefix(trimmed, "[") {
		var names []string
		if err := json.Unmarshal([]byte(trimmed), &names); err != nil {
			r.logger.Error("malformed known-shelves value, resetting to defaults",
				logging.Error(err),
				logging.String("value", trimmed))
			return r.defaultNames()
		}
		return names
	}

	// Legacy format: comma-joined plain string.
	parts := strings.Split(trimmed, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, part)
	}
	return names
}

func (r *Registry) persist(ctx context.Context, names []string) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	payload, err := json.Marshal(sorted)
	if err != nil {
		r.logger.Error("encode known shelves failed", logging.Error(err))
		return
	}
	if err := r.store.Set(ctx, settings.KeyKnownShelves, string(payload)); err != nil {
		r.logger.Error("persist known shelves failed", logging.Error(err))
	}
}

func (r *Registry) defaultNames() []string {
	cp := make([]string, len(r.defaults))
	copy(cp, r.defaults)
	return cp
}
