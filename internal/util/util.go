package util

import (
	"fmt"
	"log"

	"github.com/go-errors/errors"
)

var (
	// Version is the version number. Filled in by the build.
	Version = "0.0.0-unknown"
	// Debug turns on internal consistency checks and logging. "ON" or "OFF",
	// set with -ldflags or the -debug flag.
	Debug = "OFF"
)

// FileMode is the mode used for files created by tabdock (log files, settings)
const FileMode = 0644

// InternalError is raised when an internal invariant does not hold
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

// DebugEnabled reports whether internal assertions are active
func DebugEnabled() bool {
	return Debug == "ON"
}

// Assert panics with a stack-carrying error when cond is false and debug mode
// is on. In release mode the violation is only logged and the caller is
// expected to carry on as if the invariant held.
func Assert(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if DebugEnabled() {
		panic(errors.Wrap(&InternalError{Msg: msg}, 1))
	}
	log.Printf("TABDOCK: assertion failed: %s", msg)
}
