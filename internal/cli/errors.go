package cli

import (
	"fmt"

	"github.com/vitaminmoo/hexd/internal/config"
)

// UsageError reports a command line that does not name exactly one file.
type UsageError struct {
	Args int
	Err  error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid usage: %v", e.Err)
	}
	return fmt.Sprintf("invalid usage: expected 1 file argument, got %d", e.Args)
}

func (e *UsageError) Unwrap() error { return e.Err }

// Kind implements config.KindError.
func (e *UsageError) Kind() config.ErrorKind { return config.KindUsage }

// OpenError reports a file that could not be opened for reading.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Kind implements config.KindError.
func (e *OpenError) Kind() config.ErrorKind { return config.KindOpen }
