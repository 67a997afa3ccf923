// Package errattest provides an errat.Backend that records every log
// record it receives, for asserting on logging behavior in tests.
package errattest

import (
	"sync"

	"github.com/pipe01/errat"
	"golang.org/x/exp/slices"
)

// Record is a single log record received by Backend.
type Record struct {
	Level   errat.Level
	Message string
}

// Backend records the log records handed to it. It is safe for concurrent
// use.
type Backend struct {
	mu      sync.Mutex
	records []Record
}

var _ errat.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{}
}

// Log implements errat.Backend.
func (b *Backend) Log(level errat.Level, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records = append(b.records, Record{Level: level, Message: message})
}

// Records returns a copy of the records received so far, in order.
func (b *Backend) Records() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.records)
}

// Reset discards all recorded records.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records = nil
}
