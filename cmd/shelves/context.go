package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"shelves/internal/config"
	"shelves/internal/logging"
	"shelves/internal/registry"
	"shelves/internal/settings"
	"shelves/internal/shelf"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) openStore() (*settings.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return settings.Open(cfg.SettingsPath())
}

// newRegistry builds the known-shelf registry, seeded with the built-in and
// workflow shelf names as defaults.
func (c *commandContext) newRegistry(store *settings.Store, logger *slog.Logger) *registry.Registry {
	cfg := c.configValue()
	defaults := dedupe(
		cfg.Shelves.IncomingShelf,
		cfg.Shelves.DefaultShelf,
		cfg.Workflow.Stage1,
		cfg.Workflow.Stage2,
	)
	return registry.New(store, defaults, logger)
}

// newClassifier builds the path classifier backed by the registry's known set.
func (c *commandContext) newClassifier(reg *registry.Registry, logger *slog.Logger) *shelf.Classifier {
	cfg := c.configValue()
	plausibility := shelf.Plausibility{
		Defaults: dedupe(
			cfg.Shelves.DefaultShelf,
			cfg.Shelves.IncomingShelf,
			cfg.Workflow.Stage1,
			cfg.Workflow.Stage2,
		),
		Known: func(name string) bool {
			return reg.Contains(context.Background(), name)
		},
	}
	return shelf.NewClassifier(cfg.Paths.MusicDir, cfg.Shelves.DefaultShelf, plausibility, logger)
}

func dedupe(names ...string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
