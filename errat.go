package errat

import "fmt"

// Error is an error that knows where it was created.
type Error struct {
	message string
	loc     Location
}

// New returns an Error carrying the given message and the location of the
// call site.
func New(message string) *Error {
	return &Error{
		message: message,
		loc:     caller(1),
	}
}

// Newf is like New but builds the message from a format string.
func Newf(format string, args ...any) *Error {
	return &Error{
		message: fmt.Sprintf(format, args...),
		loc:     caller(1),
	}
}

// NewAt returns an Error carrying the given message and an explicit
// location, for callers that track positions themselves.
func NewAt(loc Location, message string) *Error {
	return &Error{
		message: message,
		loc:     loc,
	}
}

// NewLogged is like New but also emits the error's formatted text at error
// severity through the backend installed with SetBackend. Without a
// backend it behaves exactly like New.
func NewLogged(message string) *Error {
	// built inline; delegating to New would capture this frame instead
	// of the caller's
	e := &Error{
		message: message,
		loc:     caller(1),
	}
	emit(ErrorLevel, e.Error())

	return e
}

// NewLoggedf is like NewLogged but builds the message from a format
// string.
func NewLoggedf(format string, args ...any) *Error {
	e := &Error{
		message: fmt.Sprintf(format, args...),
		loc:     caller(1),
	}
	emit(ErrorLevel, e.Error())

	return e
}

// Error formats as "<message> at <file>:<line>:<column>".
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.message, e.loc)
}

// Message returns the message the error was created with.
func (e *Error) Message() string {
	return e.message
}

// At returns the location the error was created at.
func (e *Error) At() Location {
	return e.loc
}
