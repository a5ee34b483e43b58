package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/multiwind/advanced"
)

func TestReadText(t *testing.T) {
	in := `# ring
-5 -5
5 -5
5 5
-5 5


-2 -2
-2 2
2 2
2 -2
`
	outlines, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, outlines, 2)
	assert.Equal(t, advanced.Vertex{X: -5, Y: -5, Tag: 2}, outlines[0][0])
	assert.Len(t, outlines[0], 4)
	assert.Equal(t, advanced.Vertex{X: 2, Y: -2, Tag: 11}, outlines[1][3])
	assert.Greater(t, outlines[0].SignedArea(), 0.0)
	assert.Less(t, outlines[1].SignedArea(), 0.0)
}

func TestReadTextErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("0 0\n1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadText(strings.NewReader("0 zero\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	outlines, err := ReadText(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, outlines)
}

func TestReadYAML(t *testing.T) {
	in := `
outlines:
  - [[0, 0], [2, 2], [2, 0], [0, 2]]
  - [[5, 5], [6, 5], [6, 6]]
`
	outlines, err := ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, outlines, 2)
	assert.Equal(t, advanced.Vertex{X: 2, Y: 2, Tag: 1}, outlines[0][1])
	assert.Len(t, outlines[1], 3)

	_, err = ReadYAML(strings.NewReader("outlines:\n  - [[0, 0, 1]]\n"))
	assert.Error(t, err)
}

func TestReadOptions(t *testing.T) {
	opts, err := ReadOptions(strings.NewReader("frame_scale: 2\ndisable_split: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, opts.FrameScale)
	assert.True(t, opts.DisableSplit)
	assert.Equal(t, advanced.DefaultTolerance, opts.Tolerance)

	opts, err = ReadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, advanced.DefaultOptions(), opts)
}

func TestReadSVG(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <polygon points="0,0 4,0 4,4 0,4" />
  <polygon points="1 1, 2 1, 2 2" />
</svg>`
	outlines, err := ReadSVG(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, outlines, 2)
	assert.Equal(t, advanced.Vertex{X: 4, Y: -4, Tag: 2}, outlines[0][2])
	assert.Len(t, outlines[1], 3)
	// Clockwise on screen is clockwise after the flip.
	assert.Less(t, outlines[0].SignedArea(), 0.0)

	_, err = ReadSVG(strings.NewReader(`<svg><polygon points="0,0 1" /></svg>`))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	outlines, err := Read("text", strings.NewReader("0 0\n1 0\n1 1\n"))
	require.NoError(t, err)
	assert.Len(t, outlines, 1)

	_, err = Read("obj", strings.NewReader(""))
	assert.Error(t, err)
}
