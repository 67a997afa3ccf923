package errat

import "sync"

// Level is the severity of a log record. The logging constructors only
// ever emit at ErrorLevel; the lower levels exist so backends can map the
// full range of a real logger.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	}

	return "<unknown>"
}

// Backend receives the records emitted by NewLogged and NewLoggedf.
// Implementations are responsible for their own thread safety.
type Backend interface {
	Log(level Level, message string)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(level Level, message string)

func (f BackendFunc) Log(level Level, message string) {
	f(level, message)
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// SetBackend installs the backend that receives records from the logging
// constructors. Passing nil disables logging, which is also the initial
// state.
func SetBackend(b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()

	backend = b
}

// emit forwards a record to the installed backend. Without one the record
// is dropped.
func emit(level Level, message string) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()

	if b != nil {
		b.Log(level, message)
	}
}
