package advanced

import (
	"github.com/pkg/errors"

	"github.com/osuushi/multiwind/internal/sweep"
)

var (
	// ErrEmptyInput is returned when no outline has at least three vertices.
	ErrEmptyInput = errors.New("no outline with at least three vertices")
	// ErrNonFinite is returned when an outline has a NaN or infinite
	// coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")

	// Errors reported through TessellationSink.Error.
	ErrCoordTooLarge = sweep.ErrCoordTooLarge
	ErrTopology      = sweep.ErrTopology
	ErrMissingData   = sweep.ErrMissingData
)

// Threading errors up and down every step of the triangulation would add a
// ton of complexity to the code. Instead, we use panics, and the public API
// recovers to convert to an error.
type TriangulateError struct {
	error
}

// Panic with a TriangulateError wrapping one of the sentinel errors.
func fatal(cause error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(cause, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
