package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTagger(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeOutput()
	return nil
}

func (c *Config) normalizeTagger() error {
	c.Tagger.Language = strings.TrimSpace(c.Tagger.Language)
	if c.Tagger.Language == "" {
		c.Tagger.Language = Default().Tagger.Language
	}
	c.Tagger.Encoding = strings.ToLower(strings.TrimSpace(c.Tagger.Encoding))
	if c.Tagger.Encoding == "" {
		c.Tagger.Encoding = Default().Tagger.Encoding
	}

	var err error
	if c.Tagger.Home = strings.TrimSpace(c.Tagger.Home); c.Tagger.Home != "" {
		if c.Tagger.Home, err = expandPath(c.Tagger.Home); err != nil {
			return fmt.Errorf("tagger.home: %w", err)
		}
	}
	if c.Tagger.AbbreviationList = strings.TrimSpace(c.Tagger.AbbreviationList); c.Tagger.AbbreviationList != "" {
		if c.Tagger.AbbreviationList, err = expandPath(c.Tagger.AbbreviationList); err != nil {
			return fmt.Errorf("tagger.abbreviation_list: %w", err)
		}
	}
	return nil
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

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}
