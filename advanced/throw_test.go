package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatal(errors.New("boom"), "kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!: boom")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestFatalCause(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		fatal(ErrNonFinite, "outline %d", 3)
		return nil
	}()
	assert.EqualError(t, err, "outline 3: non-finite coordinate")
	assert.Equal(t, ErrNonFinite, errors.Cause(err))
}
