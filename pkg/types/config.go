package types

import "errors"

// Config holds the settings read from config.yaml, the environment, and
// command-line flags.
type Config struct {
	Locale   string `json:"locale" yaml:"locale"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Defaults applied when a key is absent from every source.
const (
	DefaultLocale   = "en"
	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrLocaleEmpty     = errors.New("locale must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. Whether the locale maps
// to a phrasebook is decided by the locale resolver, not here.
func (c Config) Validate() error {
	if c.Locale == "" {
		return ErrLocaleEmpty
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
