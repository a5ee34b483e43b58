package dbg

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/multiwind/advanced"
)

// Padding around the shape, in pixels
const dbgDrawPadding = 20

type DrawOptions struct {
	// Pixels per unit. Zero means 100.
	Scale float64
	// Draw the split triangulation instead of the triangles.
	Split bool
	// Draw the winding 0 region outside the shape, up to the frame.
	Unbounded bool
	// Stroke the boundary contours on top.
	Contours bool
}

var (
	background   = color.RGBA{0, 0, 0, 255}
	holeColor    = color.RGBA{60, 60, 60, 255}
	outsideColor = color.RGBA{30, 30, 60, 255}
	edgeColor    = color.RGBA{0, 0, 0, 255}
	contourColor = color.RGBA{0, 255, 255, 255}
	// Indexed by winding, positive levels first then negative ones.
	levelColors = []color.RGBA{
		{0, 128, 0, 255},
		{200, 120, 0, 255},
		{180, 0, 180, 255},
		{0, 90, 200, 255},
		{200, 200, 0, 255},
	}
)

// LevelColor is the fill color Draw uses for a winding level.
func LevelColor(winding int, unbounded bool) color.RGBA {
	switch {
	case winding == 0 && unbounded:
		return outsideColor
	case winding == 0:
		return holeColor
	case winding > 0:
		return levelColors[(winding-1)%len(levelColors)]
	}
	return levelColors[(len(levelColors)-1-(-winding-1)%len(levelColors))]
}

// Draw renders the triangles of a result, filled by winding level with
// their edges outlined.
func Draw(res *advanced.Result, opts DrawOptions) image.Image {
	return newDrawing(res, opts).Image()
}

func newDrawing(res *advanced.Result, opts DrawOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 100
	}

	// Only the triangles that get drawn count toward the bounds. The outside
	// also owns split points beyond the shape.
	drawn := func(fc advanced.FilledComponent) []advanced.Triangle {
		if fc.Unbounded && !opts.Unbounded {
			return nil
		}
		if opts.Split {
			return res.SplitTriangles[fc.SplitTriangles.Begin:fc.SplitTriangles.End]
		}
		return res.Triangles[fc.Triangles.Begin:fc.Triangles.End]
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, fc := range res.Levels() {
		for _, tri := range drawn(fc) {
			for _, id := range tri.V {
				p := res.Points[id]
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, fc := range res.Levels() {
		for _, tri := range drawn(fc) {
			drawTriangle(c, res, tri, LevelColor(fc.Winding, fc.Unbounded))
		}
	}

	if opts.Contours {
		c.SetLineWidth(3)
		c.SetColor(contourColor)
		for _, contour := range res.Contours {
			if res.Components[contour.Component].Unbounded && !opts.Unbounded {
				continue
			}
			for i, id := range res.ContourPoints(contour) {
				p := res.Points[id]
				if i == 0 {
					c.MoveTo(p.X, p.Y)
				} else {
					c.LineTo(p.X, p.Y)
				}
			}
			c.ClosePath()
			c.Stroke()
		}
	}
	return c
}

func drawTriangle(c *gg.Context, res *advanced.Result, tri advanced.Triangle, fill color.Color) {
	for i, id := range tri.V {
		p := res.Points[id]
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
	c.SetColor(fill)
	c.FillPreserve()
	c.SetColor(edgeColor)
	c.Stroke()
}

// SavePNG renders a result to a PNG file.
func SavePNG(res *advanced.Result, opts DrawOptions, path string) error {
	return newDrawing(res, opts).SavePNG(path)
}

// Imgcat prints an image file to the terminal (iTerm only).
func Imgcat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

// Show draws a result and prints it in the terminal, for debugging.
func Show(res *advanced.Result, opts DrawOptions) {
	path := filepath.Join(os.TempDir(), "multiwind.png")
	if err := SavePNG(res, opts, path); err != nil {
		return
	}
	Imgcat(path, os.Stdout)
}
