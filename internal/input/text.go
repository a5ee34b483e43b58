// Package input reads outline sets for the command line tool.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/multiwind/advanced"
)

// ReadText reads newline separated points in the form "x y", with each
// outline separated by an extra newline. Lines starting with # are ignored.
// Each vertex is tagged with its line number.
func ReadText(in io.Reader) (advanced.OutlineSet, error) {
	outlines := advanced.OutlineSet{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	var outline advanced.Outline
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the outline
		if line == "" {
			if len(outline) > 0 {
				outlines = append(outlines, outline)
				outline = nil
			}
			continue
		}

		// Parse the point out of the line
		vertex, err := parseVertex(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		vertex.Tag = lineNumber
		outline = append(outline, vertex)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading outlines")
	}

	// Handle trailing outline if any
	if len(outline) > 0 {
		outlines = append(outlines, outline)
	}
	return outlines, nil
}

func parseVertex(line string) (advanced.Vertex, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Vertex{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Vertex{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Vertex{}, errors.Wrap(err, "y")
	}
	return advanced.Vertex{X: x, Y: y}, nil
}
