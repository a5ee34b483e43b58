package input

import (
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/multiwind/advanced"
)

// Formats lists the names accepted by Read.
var Formats = []string{"text", "yaml", "svg"}

// Read reads an outline set in the named format.
func Read(format string, in io.Reader) (advanced.OutlineSet, error) {
	switch format {
	case "text":
		return ReadText(in)
	case "yaml":
		return ReadYAML(in)
	case "svg":
		return ReadSVG(in)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}
