package errat

import "errors"

// Located is implemented by errors that carry the source location they
// were created at.
type Located interface {
	error
	At() Location
}

// LocationOf returns the location carried by the first Located error in
// err's chain, or false when there is none.
func LocationOf(err error) (Location, bool) {
	var l Located
	if errors.As(err, &l) {
		return l.At(), true
	}

	return Location{}, false
}
