package diffmatchpatch

import "fmt"

// ArgumentError marks an InvalidArgument-class failure: a malformed
// delta, a malformed patch-text stream, or a cursor mismatch while
// replaying one. It is never returned for a timeout — deadlines are
// advisory and always produce a valid, if coarser, result.
type ArgumentError struct {
	msg string
}

// Error satisfies the error interface.
func (e *ArgumentError) Error() string {
	return e.msg
}

// argError builds an *ArgumentError with a formatted message.
func argError(format string, args ...interface{}) error {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}
