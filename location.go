package errat

import (
	"fmt"
	"runtime"
)

// Location is a source code position. Line and Column are 1-based.
type Location struct {
	File   string
	Line   int
	Column int
}

// String formats the location as "file:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Here returns the location of the line that calls it.
func Here() Location {
	return caller(1)
}

// caller captures the location skip+1 frames above itself. The Go runtime
// does not track column numbers, so captured locations always report
// column 1.
func caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "unknown"}
	}

	return Location{
		File:   file,
		Line:   line,
		Column: 1,
	}
}
