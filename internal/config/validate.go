package config

import (
	"fmt"

	"treetag/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTagger(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateTagger() error {
	if _, err := language.NewProfile(c.Tagger.Language, c.Tagger.Encoding); err != nil {
		return fmt.Errorf("tagger: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "auto", "table", "tsv":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (expected auto, table, or tsv)", c.Output.Format)
	}
}
