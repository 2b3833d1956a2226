package config

import "treetag/internal/language"

const (
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultOutputFormat = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tagger: Tagger{
			Language: language.DefaultLanguage,
			Encoding: language.DefaultEncoding,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
