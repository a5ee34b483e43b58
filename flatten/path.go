package flatten

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polyline is a closed loop flattened from one subpath. Tags[i] is the index
// in the path's command list of the command that produced Points[i].
type Polyline struct {
	Points []vec.Vec2
	Tags   []int
}

func (pl *Polyline) add(p vec.Vec2, tag int) {
	if n := len(pl.Points); n > 0 && pl.Points[n-1] == p {
		return
	}
	pl.Points = append(pl.Points, p)
	pl.Tags = append(pl.Tags, tag)
}

// Path flattens every subpath of p into a closed polyline. Subpaths are
// closed implicitly, as for filling, and those with fewer than three
// distinct points are dropped.
func Path(p *path.Data, tolerance float64) []Polyline {
	var out []Polyline
	var cur Polyline
	finish := func() {
		if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
			cur.Points, cur.Tags = cur.Points[:n-1], cur.Tags[:n-1]
		}
		if len(cur.Points) >= 3 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}

	var current, start vec.Vec2
	coordIdx := 0
	for i, cmd := range p.Cmds {
		// Drawing after a close starts a new subpath at the old start.
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && len(cur.Points) == 0 {
			cur.add(current, i)
		}
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = p.Coords[coordIdx]
			start = current
			coordIdx++
			cur.add(current, i)

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			coordIdx++
			cur.add(current, i)

		case path.CmdQuadTo:
			curve := Bezier{current, p.Coords[coordIdx], p.Coords[coordIdx+1]}
			curve.Flatten(tolerance, func(pt vec.Vec2) { cur.add(pt, i) })
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			curve := Bezier{current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]}
			curve.Flatten(tolerance, func(pt vec.Vec2) { cur.add(pt, i) })
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			finish()
			current = start
		}
	}
	finish()
	return out
}
