package mui

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedStack is reported when a scoped push was not matched by a
	// pop before End, or a pop found an empty stack.
	ErrUnbalancedStack = errors.New("unbalanced stack")
	// ErrStackOverflow is reported when a fixed-capacity stack is full.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrPoolExhausted is reported when every pool slot was already touched
	// in the current frame and another allocation is needed.
	ErrPoolExhausted = errors.New("pool exhausted")
	// ErrCapacityExceeded is reported for row declarations over 16 columns,
	// a full command buffer, or a value too large for a fixed text buffer.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNotPointer is reported when an address-derived ID is requested for
	// a value that has no stable address.
	ErrNotPointer = errors.New("value is not a pointer")
)

// PreconditionError is a programming error in the call sequence of a frame.
// It is raised with panic from inside widget calls and converted back into
// an error by Context.Frame and GUI.Frame. The frame that raised it is
// discarded.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return "mui: " + e.Op + ": " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// violation panics with a PreconditionError.
func violation(op string, err error, format string, args ...any) {
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	}
	panic(&PreconditionError{Op: op, Err: err})
}

// ParseError describes numeric edit text that could not be converted back
// into a number. The bound value keeps its previous content.
type ParseError struct {
	ID    ID
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mui: cannot parse %q as a number: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
