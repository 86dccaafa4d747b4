package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every geometric helper would bury the arithmetic.
// Instead, helpers panic with a thrown error, and every exported entry point
// recovers to convert it back into an error. Any other panic is a bug and is
// re-raised.

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type thrown struct {
	err error
}

// A CellError ties a failure to the generator index whose cell caused it.
type CellError struct {
	Index int
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d: %v", e.Index, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
func (e *CellError) Cause() error  { return e.Err }

func throw(err error) {
	panic(thrown{err})
}

// Panic with an error wrapping ErrInvalidInput.
func fatalf(format string, args ...interface{}) {
	throw(errors.Wrapf(ErrInvalidInput, format, args...))
}

// Panic with an error wrapping ErrDegenerateGeometry.
func degeneratef(format string, args ...interface{}) {
	throw(errors.Wrapf(ErrDegenerateGeometry, format, args...))
}

func HandleSamplePanicRecover(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}
