package dbg

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/multiwind/advanced"
)

func unitSquare() advanced.OutlineSet {
	return advanced.OutlineSet{{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}
}

func TestDraw(t *testing.T) {
	res := unitSquare().Triangulate(advanced.DefaultOptions())
	img := Draw(res, DrawOptions{Scale: 100})

	bounds := img.Bounds()
	assert.Equal(t, 100+2*dbgDrawPadding, bounds.Dx())
	assert.Equal(t, 100+2*dbgDrawPadding, bounds.Dy())

	// (0.25, 0.75) is well away from the diagonal. The image is flipped so y
	// grows downward.
	x := dbgDrawPadding + 25
	y := bounds.Dy() - (dbgDrawPadding + 75)
	assert.Equal(t, color.RGBAModel.Convert(LevelColor(1, false)), color.RGBAModel.Convert(img.At(x, y)))

	// The padding stays as background.
	assert.Equal(t, color.RGBAModel.Convert(background), color.RGBAModel.Convert(img.At(2, 2)))
}

func TestDrawSplitBounds(t *testing.T) {
	// The outside owns split points beyond the square, which stay out of
	// the picture unless the outside is drawn.
	res := unitSquare().Triangulate(advanced.DefaultOptions())
	outside := res.Unbounded()
	var beyond bool
	for _, p := range res.SplitPointsOf(outside) {
		beyond = beyond || p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1
	}
	require.True(t, beyond)

	for _, split := range []bool{false, true} {
		img := Draw(res, DrawOptions{Scale: 100, Split: split})
		assert.Equal(t, 100+2*dbgDrawPadding, img.Bounds().Dx(), "split %v", split)
		assert.Equal(t, 100+2*dbgDrawPadding, img.Bounds().Dy(), "split %v", split)
	}
}

func TestDrawUnbounded(t *testing.T) {
	res := unitSquare().Triangulate(advanced.DefaultOptions())
	img := Draw(res, DrawOptions{Scale: 100, Unbounded: true, Split: true, Contours: true})
	// The frame is 1.1 times the square.
	assert.InDelta(t, 110+2*dbgDrawPadding, img.Bounds().Dx(), 1)
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, holeColor, LevelColor(0, false))
	assert.Equal(t, outsideColor, LevelColor(0, true))
	assert.Equal(t, levelColors[0], LevelColor(1, false))
	assert.Equal(t, levelColors[0], LevelColor(1+len(levelColors), false))
	assert.Equal(t, levelColors[len(levelColors)-1], LevelColor(-1, false))
	assert.NotEqual(t, LevelColor(1, false), LevelColor(-1, false))
}

func TestSavePNG(t *testing.T) {
	res := unitSquare().Triangulate(advanced.DefaultOptions())
	path := filepath.Join(t.TempDir(), "square.png")
	require.NoError(t, SavePNG(res, DrawOptions{Contours: true}, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
