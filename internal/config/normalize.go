package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeShelves()
	c.normalizeWorkflow()
	c.normalizeTitleCleaner()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.MusicDir) == "" {
		c.Paths.MusicDir = defaultMusicDir
	}
	if c.Paths.MusicDir, err = expandPath(c.Paths.MusicDir); err != nil {
		return fmt.Errorf("paths.music_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeShelves() {
	c.Shelves.DefaultShelf = strings.TrimSpace(c.Shelves.DefaultShelf)
	if c.Shelves.DefaultShelf == "" {
		c.Shelves.DefaultShelf = defaultShelf
	}
	c.Shelves.IncomingShelf = strings.TrimSpace(c.Shelves.IncomingShelf)
	if c.Shelves.IncomingShelf == "" {
		c.Shelves.IncomingShelf = defaultIncomingShelf
	}
}

func (c *Config) normalizeWorkflow() {
	c.Workflow.Stage1 = strings.TrimSpace(c.Workflow.Stage1)
	if c.Workflow.Stage1 == "" {
		c.Workflow.Stage1 = c.Shelves.IncomingShelf
	}
	c.Workflow.Stage2 = strings.TrimSpace(c.Workflow.Stage2)
	if c.Workflow.Stage2 == "" {
		c.Workflow.Stage2 = c.Shelves.DefaultShelf
	}
}

func (c *Config) normalizeTitleCleaner() {
	c.TitleCleaner.Pattern = strings.TrimSpace(c.TitleCleaner.Pattern)
	trimmed := make([]string, 0, len(c.TitleCleaner.Whitelist))
	for _, entry := range c.TitleCleaner.Whitelist {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		trimmed = append(trimmed, entry)
	}
	c.TitleCleaner.Whitelist = trimmed
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
