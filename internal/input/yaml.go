package input

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/multiwind/advanced"
)

// A YAML document lists outlines as sequences of [x, y] pairs:
//
//	outlines:
//	  - [[0, 0], [1, 0], [1, 1]]
//	  - [[2, 2], [3, 2], [3, 3]]
type yamlDocument struct {
	Outlines [][][]float64 `yaml:"outlines"`
}

// ReadYAML reads an outline set from a YAML document. Each vertex is tagged
// with its index in its outline.
func ReadYAML(in io.Reader) (advanced.OutlineSet, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		if err == io.EOF {
			return advanced.OutlineSet{}, nil
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}

	outlines := make(advanced.OutlineSet, 0, len(doc.Outlines))
	for i, points := range doc.Outlines {
		outline := make(advanced.Outline, len(points))
		for j, point := range points {
			if len(point) != 2 {
				return nil, errors.Errorf("outline %d point %d: expected [x, y], got %v", i, j, point)
			}
			outline[j] = advanced.Vertex{X: point[0], Y: point[1], Tag: j}
		}
		outlines = append(outlines, outline)
	}
	return outlines, nil
}

// ReadOptions decodes triangulation options from a YAML config file. Fields
// missing from the file keep their defaults.
func ReadOptions(in io.Reader) (advanced.Options, error) {
	opts := advanced.DefaultOptions()
	if err := yaml.NewDecoder(in).Decode(&opts); err != nil && err != io.EOF {
		return opts, errors.Wrap(err, "decoding options")
	}
	return opts, nil
}
