package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	var nilPointer *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPointer))

	x, y := 1, 2
	assert.Equal(t, Name(&x), Name(&x))
	assert.NotEmpty(t, Name(&y))
	assert.Equal(t, ComponentName(3), ComponentName(3))
	// Component names are keyed apart from plain ints.
	Name(3)
	assert.Equal(t, Name(3), Name(3))
}
