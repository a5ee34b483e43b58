package sweep

import (
	"runtime"

	"github.com/pkg/errors"
)

var (
	// ErrCoordTooLarge is reported for a polygon with a coordinate whose
	// magnitude exceeds MaxCoord, or that is not finite.
	ErrCoordTooLarge = errors.New("coordinate too large")
	// ErrTopology is reported when the sweep finds its own invariants
	// broken, which happens on numerically degenerate input.
	ErrTopology = errors.New("inconsistent sweep topology")
	// ErrMissingData is reported when a vertex reaches the output without
	// user data.
	ErrMissingData = errors.New("vertex without data")
)

// The sweep handlers panic with a tessError, and Tessellate recovers once
// per polygon.
type tessError struct {
	error
}

func fatalf(cause error, format string, args ...interface{}) {
	panic(tessError{errors.Wrapf(cause, format, args...)})
}

func check(cond bool, what string) {
	if !cond {
		fatalf(ErrTopology, "%s", what)
	}
}

// recoverTessError converts a recovered value into the error to report.
// Runtime faults inside the sweep are symptoms of broken topology and are
// reported as such; anything else is re-panicked.
func recoverTessError(r interface{}) error {
	if r == nil {
		return nil
	}
	switch r := r.(type) {
	case tessError:
		return r.error
	case runtime.Error:
		return errors.Wrap(ErrTopology, r.Error())
	}
	panic(r)
}
