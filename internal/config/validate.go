package config

import (
	"fmt"
	"strings"
)

// invalidShelfChars are rejected in configured shelf names because the names
// become directory components.
const invalidShelfChars = `<>:"|?*`

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateShelves(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateShelves() error {
	if err := checkShelfName("shelves.default_shelf", c.Shelves.DefaultShelf); err != nil {
		return err
	}
	return checkShelfName("shelves.incoming_shelf", c.Shelves.IncomingShelf)
}

func (c *Config) validateWorkflow() error {
	if err := checkShelfName("workflow.stage_1", c.Workflow.Stage1); err != nil {
		return err
	}
	if err := checkShelfName("workflow.stage_2", c.Workflow.Stage2); err != nil {
		return err
	}
	if c.Workflow.Enabled && c.Workflow.Stage1 == c.Workflow.Stage2 {
		return fmt.Errorf("workflow.stage_1 and workflow.stage_2 must differ when workflow is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func checkShelfName(key, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s must be set", key)
	}
	if strings.ContainsAny(name, invalidShelfChars) {
		return fmt.Errorf("%s contains invalid path characters (%s)", key, invalidShelfChars)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%s cannot be %q", key, name)
	}
	return nil
}
