package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTessellate(t *testing.T) {
	var combined [][4]int
	sink := &passSink{
		combine: func(x, y float64, data [4]int, weights [4]float64) int {
			combined = append(combined, data)
			return 100 + len(combined)
		},
	}
	square := func(x, y float64, data int) TessContour {
		return TessContour{
			{X: x, Y: y, Data: data},
			{X: x + 1, Y: y, Data: data + 1},
			{X: x + 1, Y: y + 1, Data: data + 2},
			{X: x, Y: y + 1, Data: data + 3},
		}
	}
	polygons := []TessPolygon{{square(0, 0, 0), square(1, 1, 4)}}
	require.True(t, Tessellate(polygons, TessOptions{ShouldFill: NonZero}, sink))
	require.NoError(t, sink.err)

	// The shared corner is merged from two sources.
	require.Len(t, combined, 1)
	assert.ElementsMatch(t, []int{2, 4}, combined[0][:2])
	assert.Equal(t, UndefinedData, combined[0][2])
	assert.Equal(t, UndefinedData, combined[0][3])
	assert.Len(t, sink.triangles, 4)
	for _, tri := range sink.triangles {
		assert.Equal(t, 1, tri.winding)
	}
}
