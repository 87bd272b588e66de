package config

import "errors"

// Process exit codes.
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitBadUsage = -2
)

// ErrorKind identifies a terminal error reported to the user.
type ErrorKind int

const (
	KindUsage ErrorKind = iota + 1
	KindOpen
)

// ExitCodes maps each error kind to the code the process exits with.
// A file that cannot be opened exits with the generic failure code.
var ExitCodes = map[ErrorKind]int{
	KindUsage: ExitBadUsage,
	KindOpen:  ExitFailure,
}

// KindError is implemented by errors that carry an ErrorKind.
type KindError interface {
	error
	Kind() ErrorKind
}

// ExitCode returns the exit code for err. Errors without a known kind
// exit with ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ke KindError
	if errors.As(err, &ke) {
		if code, ok := ExitCodes[ke.Kind()]; ok {
			return code
		}
	}
	return ExitFailure
}
