// Package logging constructs the slog loggers used across treetag.
package logging
