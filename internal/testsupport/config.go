package testsupport

import (
	"path/filepath"
	"testing"

	"shelves/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.MusicDir = filepath.Join(base, "music")
	cfg.Paths.DataDir = filepath.Join(base, "data")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithWorkflow enables the two-stage workflow on the test config.
func WithWorkflow(stage1, stage2 string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Workflow.Enabled = true
		cfg.Workflow.Stage1 = stage1
		cfg.Workflow.Stage2 = stage2
	}
}
