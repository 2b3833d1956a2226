// Package config loads, normalizes, and validates treetag configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: which model to tag with, where the TreeTagger installation
// lives, and how output and logs are rendered.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical encoding names, and clear validation errors.
package config
