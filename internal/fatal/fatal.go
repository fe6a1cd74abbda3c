// Package fatal implements the abort-with-diagnostic behaviour spec.md §7
// requires for programmer errors (null region in enter, empty stack on
// leave, unexpected region variant, non-empty destination stack on task
// switch). These are not recoverable data errors; they indicate the
// instrumented program violated the engine's contract.
//
// Grounded on original_source's `LOG_ERROR`+`abort()` pattern used
// throughout trace-core.c and trace-location.c. A `panic` is used instead of
// `os.Exit`/`abort()` so that a test binary embedding the runtime can still
// recover and report the failure instead of killing the whole test process.
package fatal

import "go.uber.org/zap"

// Error is the panic value raised by Abort.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Abort logs msg at error level (if logger is non-nil) and panics with a
// *Error carrying msg. Callers in the engine use this for the programmer
// errors enumerated in spec.md §4.1/§7; it must never be reached by
// malformed *input data* from a sink, only by misuse of the API contract.
func Abort(logger *zap.Logger, msg string) {
	if logger != nil {
		logger.Error(msg)
	}
	panic(&Error{Msg: msg})
}

// AbortIf calls Abort(logger, msg) if cond is true.
func AbortIf(logger *zap.Logger, cond bool, msg string) {
	if cond {
		Abort(logger, msg)
	}
}
