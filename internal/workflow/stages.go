package workflow

import (
	"shelves/internal/config"
)

// Stages describes the user's two-step processing pipeline.
type Stages struct {
	Enabled bool
	Stage1  string
	Stage2  string
}

// FromConfig builds Stages from application configuration.
func FromConfig(cfg *config.Config) Stages {
	if cfg == nil {
		return Stages{}
	}
	return Stages{
		Enabled: cfg.Workflow.Enabled,
		Stage1:  cfg.Workflow.Stage1,
		Stage2:  cfg.Workflow.Stage2,
	}
}

// Apply returns the shelf name to write out for a resolved shelf. With the
// workflow disabled, or for any shelf other than stage 1, the name passes
// through unchanged.
func (s Stages) Apply(shelfName string) string {
	if !s.Enabled || shelfName == "" {
		return shelfName
	}
	if shelfName == s.Stage1 && s.Stage2 != "" {
		return s.Stage2
	}
	return shelfName
}
