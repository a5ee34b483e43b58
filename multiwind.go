// A multi-winding polygon triangulation package for Go.
//
// This package converts a set of outlines, which may be non-convex, may
// intersect themselves and each other, and may be nested, into triangles
// grouped by winding number. Every region of the plane gets a level: the
// outside of the shape and its holes have winding 0, and each filled region
// has the winding number of the outlines around it.
//
// Every triangle is built on points of the input or on points induced where
// outlines cross. See the advanced package for the full result.
package multiwind

import (
	"log/slog"

	"seehuhn.de/go/geom/path"

	"github.com/osuushi/multiwind/advanced"
	"github.com/osuushi/multiwind/flatten"
	"github.com/osuushi/multiwind/internal/logging"
)

type Vertex = advanced.Vertex
type Outline = advanced.Outline
type Result = advanced.Result
type Options = advanced.Options

// Triangulate triangulates a set of outlines with the default options.
//
// Counterclockwise outlines add 1 to the winding number of the region they
// enclose, and clockwise outlines subtract 1. The order of the outlines is
// irrelevant.
func Triangulate(outlines ...Outline) (*Result, error) {
	return TriangulateWithOptions(advanced.DefaultOptions(), outlines...)
}

func TriangulateWithOptions(opts Options, outlines ...Outline) (result *Result, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.OutlineSet(outlines).Triangulate(opts), nil
}

// TriangulatePath flattens the curves of a path to within tolerance and
// triangulates the resulting outlines. The tag of each sample point is the
// index of the path command that produced it.
func TriangulatePath(p *path.Data, tolerance float64) (*Result, error) {
	return TriangulateWithOptions(advanced.DefaultOptions(), PathOutlines(p, tolerance)...)
}

// PathOutlines flattens a path into outlines without triangulating it.
func PathOutlines(p *path.Data, tolerance float64) []Outline {
	polylines := flatten.Path(p, tolerance)
	outlines := make([]Outline, len(polylines))
	for i, pl := range polylines {
		outline := make(Outline, len(pl.Points))
		for j, pt := range pl.Points {
			outline[j] = Vertex{X: pt.X, Y: pt.Y, Tag: pl.Tags[j]}
		}
		outlines[i] = outline
	}
	return outlines
}

// SetLogger installs the logger used by every package in this module. Nil
// restores the default, which discards everything.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
