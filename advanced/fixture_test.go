package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and builds outline sets. This is not a
// full (or even correct) svg parser. It finds the polygons in the SVG and
// converts each to a CCW outline. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"arrow", "comb", "zigzag"}

func LoadFixture(name string) OutlineSet {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	var set OutlineSet
	for _, polygonEl := range polygons {
		var o Outline
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pointStrings[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseFloat(pointStrings[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			o = append(o, Vertex{X: x, Y: y, Tag: len(o)})
		}
		// SVG has y pointing down, which flips the orientation.
		if o.SignedArea() < 0 {
			o = o.Reverse()
		}
		set = append(set, o)
	}
	return set
}

func outline(coords ...float64) Outline {
	var o Outline
	for i := 0; i+1 < len(coords); i += 2 {
		o = append(o, Vertex{X: coords[i], Y: coords[i+1], Tag: i / 2})
	}
	return o
}

func UnitSquare() OutlineSet {
	return OutlineSet{outline(0, 0, 1, 0, 1, 1, 0, 1)}
}

func Bowtie() OutlineSet {
	return OutlineSet{outline(0, 0, 2, 2, 2, 0, 0, 2)}
}

// Two CCW squares, one inside the other.
func NestedSquares() OutlineSet {
	return OutlineSet{
		outline(0, 0, 4, 0, 4, 4, 0, 4),
		outline(1, 1, 3, 1, 3, 3, 1, 3),
	}
}

// Two CCW squares overlapping in a 1x1 square.
func OverlappingSquares() OutlineSet {
	return OutlineSet{
		outline(0, 0, 2, 0, 2, 2, 0, 2),
		outline(1, 1, 3, 1, 3, 3, 1, 3),
	}
}

// Two CCW unit squares touching at one corner.
func TouchingSquares() OutlineSet {
	return OutlineSet{
		outline(0, 0, 1, 0, 1, 1, 0, 1),
		outline(1, 1, 2, 1, 2, 2, 1, 2),
	}
}

// Some ad hoc code specified fixtures
func SimpleStar() OutlineSet {
	var o Outline
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		o = append(o, Vertex{X: radius * math.Cos(angle), Y: radius * math.Sin(angle), Tag: i})
	}
	return OutlineSet{o}
}

// Self intersecting five pointed star. The pentagon in the middle has
// winding 2.
func Pentagram() OutlineSet {
	var o Outline
	for i := 0; i < 5; i++ {
		angle := math.Pi/2 + 4*math.Pi*float64(i)/5
		o = append(o, Vertex{X: 5 * math.Cos(angle), Y: 5 * math.Sin(angle), Tag: i})
	}
	return OutlineSet{o}
}

func SquareWithHole() OutlineSet {
	return OutlineSet{
		outline(-5, -5, 5, -5, 5, 5, -5, 5),
		outline(-2, -2, -2, 2, 2, 2, 2, -2),
	}
}

func StarOutline() OutlineSet {
	var filled, hole Outline
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	const holeOuterRadius = filledOuterRadius - 2
	const holeInnerRadius = filledInnerRadius - 2
	for i := 0; i < 10; i++ {
		var (
			filledRadius float64
			holeRadius   float64
		)
		if i%2 == 0 {
			filledRadius = filledOuterRadius
			holeRadius = holeOuterRadius
		} else {
			filledRadius = filledInnerRadius
			holeRadius = holeInnerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		filled = append(filled, Vertex{X: filledRadius * math.Cos(angle), Y: filledRadius * math.Sin(angle)})
		hole = append(hole, Vertex{X: holeRadius * math.Cos(angle), Y: holeRadius * math.Sin(angle)})
	}
	return OutlineSet{filled, hole.Reverse()}
}

func StarStripes() OutlineSet {
	// Multiple inset stars with alternating winding
	var set OutlineSet
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		var o Outline
		for j := 0; j < 10; j++ {
			angle := 2 * math.Pi * float64(j) / 10
			r := outerRadius * scale
			if j%2 == 1 {
				r *= indentScale
			}
			o = append(o, Vertex{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
		}
		scale *= gapScale
		if i%2 == 1 {
			o = o.Reverse()
		}
		set = append(set, o)
	}
	return set
}

func MultiLayeredHoles() OutlineSet {
	// Multiple holes which contain filled shapes inside.
	makeStar := func(x, y, outerRadius, innerRadius float64) Outline {
		var o Outline
		for i := 0; i < 10; i++ {
			angle := 2 * math.Pi * float64(i) / 10
			r := outerRadius
			if i%2 == 1 {
				r = innerRadius
			}
			o = append(o, Vertex{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
		}
		return o
	}
	return OutlineSet{
		// Outer star
		makeStar(0, 0, 10, 7),
		// Top hole
		makeStar(1.5, 5, 3, 2).Reverse(),
		// Top inner
		makeStar(1.5, 5, 2, 1),
		// Bottom hole
		makeStar(1.8, -5, 3, 2).Reverse(),
		// Bottom inner
		makeStar(1.8, -5, 2, 1),
		// Left hole
		makeStar(-3, 0, 4, 2).Reverse(),
		// Left inner
		makeStar(-3, 0, 3, 1),
	}
}

// Every fixture, by name.
func AllFixtures() map[string]OutlineSet {
	all := map[string]OutlineSet{
		"unit square":         UnitSquare(),
		"bowtie":              Bowtie(),
		"nested squares":      NestedSquares(),
		"overlapping squares": OverlappingSquares(),
		"touching squares":    TouchingSquares(),
		"simple star":         SimpleStar(),
		"pentagram":           Pentagram(),
		"square with hole":    SquareWithHole(),
		"star outline":        StarOutline(),
		"star stripes":        StarStripes(),
		"multi layered holes": MultiLayeredHoles(),
	}
	for _, name := range fixtureNames {
		all[name] = LoadFixture(name)
	}
	return all
}
