package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/multiwind/advanced"
)

// ReadSVG finds the <polygon> elements in an SVG document and converts each
// into an outline. This is not a full (or even correct) svg parser:
// transforms and every other element are ignored.
//
// SVG has y pointing down, so the y axis is flipped to keep the drawn
// orientation of each polygon.
func ReadSVG(in io.Reader) (advanced.OutlineSet, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	outlines := make(advanced.OutlineSet, 0, len(polygons))
	for i, polygonEl := range polygons {
		outline, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		outlines = append(outlines, outline)
	}
	return outlines, nil
}

// Parses an SVG points attribute. Coordinates may be separated by commas,
// whitespace, or both.
func parsePoints(attr string) (advanced.Outline, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	var outline advanced.Outline
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		outline = append(outline, advanced.Vertex{X: x, Y: -y, Tag: i / 2})
	}
	return outline, nil
}
