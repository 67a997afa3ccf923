// Package zap forwards errat records to a zap logger.
package zap

import (
	"github.com/pipe01/errat"
	"go.uber.org/zap"
)

// Backend sends records to a zap logger.
type Backend struct {
	logger *zap.Logger
}

var _ errat.Backend = (*Backend)(nil)

// New returns a Backend logging through the given logger. Passing nil
// logs through the process-wide zap.L().
func New(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.L().Named("errat")
	}

	return &Backend{logger: logger}
}

// Log implements errat.Backend.
func (b *Backend) Log(level errat.Level, message string) {
	switch level {
	case errat.DebugLevel:
		b.logger.Debug(message)
	case errat.InfoLevel:
		b.logger.Info(message)
	case errat.WarnLevel:
		b.logger.Warn(message)
	default:
		b.logger.Error(message)
	}
}
