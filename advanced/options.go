package advanced

import "github.com/osuushi/multiwind/internal/sweep"

const (
	DefaultTolerance  = 1e-9
	DefaultFrameScale = 1.1
)

type Options struct {
	// Tolerance is the distance, relative to the larger side of the shape's
	// bounding box, within which two induced points at the same place are
	// considered the same point.
	Tolerance float64 `yaml:"tolerance"`
	// FrameScale sizes the rectangle that materializes the outside of the
	// shape, relative to its bounding box. Must be greater than 1.
	FrameScale float64 `yaml:"frame_scale"`
	// MaxCacheVertices is the largest single outline tried on the convex
	// fast path. Negative disables the fast path.
	MaxCacheVertices int `yaml:"max_cache_vertices"`
	// DisableSplit skips the split pass, leaving the split triangulation
	// empty.
	DisableSplit bool `yaml:"disable_split"`
}

func DefaultOptions() Options {
	return Options{
		Tolerance:        DefaultTolerance,
		FrameScale:       DefaultFrameScale,
		MaxCacheVertices: sweep.DefaultMaxCacheVertices,
	}
}

// withDefaults fills zero fields with their defaults.
func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.FrameScale <= 1 {
		o.FrameScale = DefaultFrameScale
	}
	if o.MaxCacheVertices == 0 {
		o.MaxCacheVertices = sweep.DefaultMaxCacheVertices
	} else if o.MaxCacheVertices < 0 {
		o.MaxCacheVertices = 0
	}
	return o
}
