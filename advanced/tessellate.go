package advanced

import "github.com/osuushi/multiwind/internal/sweep"

// The sweep tessellator the triangulator is built on, for callers that want
// its raw output.
type (
	TessellationSink = sweep.Sink
	PrimitiveKind    = sweep.PrimitiveKind
	TessVertex       = sweep.Vertex
	TessContour      = sweep.Contour
	TessPolygon      = sweep.Polygon
	TessOptions      = sweep.Options
)

const (
	Triangles = sweep.Triangles
	LineLoop  = sweep.LineLoop

	// UndefinedData marks unused combine sources.
	UndefinedData = sweep.UndefinedData
)

// Tessellate runs the sweep tessellator over each polygon independently,
// reporting primitives to sink. It returns whether every polygon succeeded.
func Tessellate(polygons []TessPolygon, opts TessOptions, sink TessellationSink) bool {
	return sweep.Tessellate(polygons, opts, sink)
}

// NonZero is the default fill predicate.
func NonZero(winding int) bool {
	return sweep.NonZero(winding)
}
