// Package errat provides errors that automatically capture the source
// location they were created at.
//
// New and Newf build an error from a message and record the file and line
// of the call site; the error formats as
//
//	<message> at <file>:<line>:<column>
//
// NewLogged and NewLoggedf additionally emit the formatted text at error
// severity through a backend installed with SetBackend, so a failure
// becomes visible the moment it is created, before any caller decides
// what to do with it. Without an installed backend the logging variants
// behave exactly like the silent ones.
//
//	func loadUser(id uint64) (User, error) {
//		u, ok := users[id]
//		if !ok {
//			return User{}, errat.Newf("user not found with ID: %d", id)
//		}
//		return u, nil
//	}
//
// Errors propagate with the usual early return; at the top of the call
// chain the location is still attached, either in the formatted message
// or extracted with LocationOf.
//
// The Go runtime does not expose column numbers, so captured locations
// always report column 1. Producers that track exact positions
// themselves, such as parsers, can attach them with NewAt.
package errat
