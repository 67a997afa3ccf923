// Package commonlog forwards errat records to a tliron/commonlog logger.
package commonlog

import (
	"github.com/pipe01/errat"
	"github.com/tliron/commonlog"
)

// Backend sends records to a named commonlog logger.
type Backend struct {
	logger commonlog.Logger
}

var _ errat.Backend = (*Backend)(nil)

// New returns a Backend that logs through commonlog.GetLogger(name).
func New(name string) *Backend {
	return &Backend{logger: commonlog.GetLogger(name)}
}

// Log implements errat.Backend.
func (b *Backend) Log(level errat.Level, message string) {
	switch level {
	case errat.DebugLevel:
		b.logger.Debug(message)
	case errat.InfoLevel:
		b.logger.Info(message)
	case errat.WarnLevel:
		b.logger.Warning(message)
	default:
		b.logger.Error(message)
	}
}
