// Demo of multi-winding triangulation. Reads a set of outlines, triangulates
// them, and prints a summary of every winding level. Optionally renders the
// triangulation to a PNG.
//
// Text input should be newline separated points in the form "x y", with each
// outline separated by an extra newline. Counterclockwise outlines add to the
// winding number and clockwise outlines subtract from it. Outlines may
// intersect.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/multiwind"
	"github.com/osuushi/multiwind/advanced"
	"github.com/osuushi/multiwind/dbg"
	"github.com/osuushi/multiwind/internal/input"
)

type config struct {
	input     string
	format    string
	options   string
	png       string
	imgcat    bool
	scale     float64
	split     bool
	unbounded bool
	names     bool
	color     bool
	verbose   bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("multiwind", "Triangulate a set of outlines by winding number.")
	app.Arg("input", "Outline file. Reads stdin when omitted or \"-\".").Default("-").StringVar(&cfg.input)
	app.Flag("format", "Input format.").Short('f').Default("text").EnumVar(&cfg.format, input.Formats...)
	app.Flag("config", "YAML file with triangulation options.").Short('c').ExistingFileVar(&cfg.options)
	app.Flag("png", "Render the triangulation to this PNG file.").StringVar(&cfg.png)
	app.Flag("imgcat", "Print the rendered PNG to the terminal.").BoolVar(&cfg.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").Default("100").Float64Var(&cfg.scale)
	app.Flag("split", "Render the split triangulation.").BoolVar(&cfg.split)
	app.Flag("unbounded", "Render the outside of the shape up to the frame.").BoolVar(&cfg.unbounded)
	app.Flag("names", "List every component by name.").BoolVar(&cfg.names)
	app.Flag("color", "Colorize the summary.").Default("true").BoolVar(&cfg.color)
	app.Flag("verbose", "Log triangulation statistics to stderr.").Short('v').BoolVar(&cfg.verbose)
	return app
}

func main() {
	var cfg config
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		app.Fatalf("%v", err)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	if cfg.verbose {
		multiwind.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := advanced.DefaultOptions()
	if cfg.options != "" {
		f, err := os.Open(cfg.options)
		if err != nil {
			return err
		}
		opts, err = input.ReadOptions(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	in := stdin
	if cfg.input != "-" && cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	outlines, err := input.Read(cfg.format, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Read %d outlines\n", len(outlines))

	res, err := multiwind.TriangulateWithOptions(opts, outlines...)
	if err != nil {
		return err
	}
	printSummary(stdout, res, aurora.NewAurora(cfg.color), cfg.names)

	if cfg.png != "" {
		drawOpts := dbg.DrawOptions{
			Scale:     cfg.scale,
			Split:     cfg.split,
			Unbounded: cfg.unbounded,
			Contours:  true,
		}
		if err := dbg.SavePNG(res, drawOpts, cfg.png); err != nil {
			return err
		}
		if cfg.imgcat {
			dbg.Imgcat(cfg.png, stdout)
		}
	}
	return nil
}

func printSummary(w io.Writer, res *advanced.Result, au aurora.Aurora, names bool) {
	fmt.Fprintf(w, "%d points (%d induced), %d triangles, %d split triangles\n",
		len(res.Points), res.Stats.Induced, len(res.Triangles), len(res.SplitTriangles))

	for _, fc := range res.Levels() {
		label := fmt.Sprintf("winding %d", fc.Winding)
		if fc.Winding == 0 {
			if fc.Unbounded {
				label += " (outside)"
			} else {
				label += " (holes)"
			}
		}
		var status aurora.Value
		switch {
		case fc.Failed:
			status = au.Red("failed")
		case fc.Empty():
			status = au.Faint("empty")
		default:
			status = au.Green("ok")
		}
		fmt.Fprintf(w, "%-22s %s: %d components, %d triangles, %d contours\n",
			au.Bold(label), status, fc.Components.Len(), fc.Triangles.Len(), fc.Contours.Len())

		if !names {
			continue
		}
		for ci := fc.Components.Begin; ci < fc.Components.End; ci++ {
			c := res.Components[ci]
			fmt.Fprintf(w, "    %s: %d triangles, %d contours\n",
				au.Cyan(dbg.ComponentName(ci)), c.Triangles.Len(), c.Contours.Len())
		}
	}
}
