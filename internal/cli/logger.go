package cli

import (
	"go.uber.org/zap"
)

// newLogger builds a production zap logger writing JSON to stderr at the
// given level ("debug", "info", "warn", "error").
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
