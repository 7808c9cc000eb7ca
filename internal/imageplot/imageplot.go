// Package imageplot renders chart specifications to static images with gonum/plot.
package imageplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
)

const (
	defaultFormat   = "png"
	defaultWidthCm  = 20
	defaultHeightCm = 12
	defaultBins     = 16
)

// Options controls image output.
type Options struct {
	Dir      string
	Format   string
	WidthCm  float64
	HeightCm float64
	Bins     int
}

// Renderer draws charts into image files, one file per registered target.
type Renderer struct {
	opts    Options
	targets map[string]string
	written []string
}

// New returns a Renderer with defaults applied to zero-valued options.
func New(opts Options) (*Renderer, error) {
	opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	if opts.Format == "" {
		opts.Format = defaultFormat
	}
	if opts.Format != "png" && opts.Format != "svg" {
		return nil, fmt.Errorf("unsupported image format %q (want png or svg)", opts.Format)
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.WidthCm <= 0 {
		opts.WidthCm = defaultWidthCm
	}
	if opts.HeightCm <= 0 {
		opts.HeightCm = defaultHeightCm
	}
	if opts.Bins <= 0 {
		opts.Bins = defaultBins
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create image directory %s: %w", opts.Dir, err)
	}
	return &Renderer{opts: opts, targets: make(map[string]string)}, nil
}

// Allow registers a target id and the file stem its chart is saved under.
func (r *Renderer) Allow(id, stem string) {
	r.targets[id] = stem
}

// Written lists the files saved so far.
func (r *Renderer) Written() []string {
	return append([]string(nil), r.written...)
}

// Render draws the traces and saves the image for the target. Options are
// ignored: images carry no interactive controls.
func (r *Renderer) Render(target charts.Target, traces []charts.Trace, layout charts.Layout, _ charts.Options) error {
	stem, ok := r.targets[target.ID]
	if !ok {
		return fmt.Errorf("image renderer has no target %q: %w", target.ID, charts.ErrTargetNotFound)
	}

	p, err := r.build(traces, layout)
	if err != nil {
		return fmt.Errorf("plot %q: %w", target.ID, err)
	}

	path := filepath.Join(r.opts.Dir, stem+"."+r.opts.Format)
	width := vg.Length(r.opts.WidthCm) * vg.Centimeter
	height := vg.Length(r.opts.HeightCm) * vg.Centimeter
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("unable to save chart %s: %w", path, err)
	}
	r.written = append(r.written, path)
	logging.LogRender("image", target.ID, target.JobName, path)
	return nil
}

func (r *Renderer) build(traces []charts.Trace, layout charts.Layout) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = layout.Title
	if layout.XAxis != nil {
		p.X.Label.Text = layout.XAxis.Title
	}
	if layout.YAxis != nil {
		p.Y.Label.Text = layout.YAxis.Title
	}

	var boxNames []string
	for i, tr := range traces {
		switch tr.Type {
		case charts.TraceBar:
			if err := addBars(p, tr); err != nil {
				return nil, err
			}
		case charts.TraceBox:
			boxNames = append(boxNames, tr.Name)
			if err := addBox(p, tr, float64(len(boxNames)-1)); err != nil {
				return nil, err
			}
		case charts.TraceHistogram:
			if err := addHistogram(p, tr, r.opts.Bins, plotutil.Color(i)); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported trace type %q", tr.Type)
		}
	}
	if len(boxNames) > 0 {
		p.NominalX(boxNames...)
	}
	return p, nil
}

type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func addBars(p *plot.Plot, tr charts.Trace) error {
	heights, present := tr.Y.Floats()
	if len(heights) == 0 {
		return nil
	}
	bars, err := plotter.NewBarChart(plotter.Values(heights), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)

	if tr.ErrorY != nil && tr.ErrorY.Visible {
		spread, _ := tr.ErrorY.Array.Floats()
		if points := errorPointsFor(heights, present, spread); len(points.XYs) > 0 {
			errBars, err := plotter.NewYErrorBars(points)
			if err != nil {
				return err
			}
			p.Add(errBars)
		}
	}

	if labels := tr.X.Strings(); len(labels) == len(heights) {
		p.NominalX(labels...)
	}
	return nil
}

// errorPointsFor places one error bar on top of every bar that has a value.
// Missing values stay empty gaps.
func errorPointsFor(heights []float64, present []bool, spread []float64) errorPoints {
	var points errorPoints
	for i, h := range heights {
		if i < len(present) && !present[i] {
			continue
		}
		var e float64
		if i < len(spread) {
			e = spread[i]
		}
		points.XYs = append(points.XYs, plotter.XY{X: float64(i), Y: h})
		points.YErrors = append(points.YErrors, struct{ Low, High float64 }{Low: e, High: e})
	}
	return points
}

func addBox(p *plot.Plot, tr charts.Trace, loc float64) error {
	samples, _ := tr.Y.Floats()
	if len(samples) == 0 {
		return nil
	}
	box, err := plotter.NewBoxPlot(vg.Points(20), loc, plotter.Values(samples))
	if err != nil {
		return err
	}
	p.Add(box)
	return nil
}

func addHistogram(p *plot.Plot, tr charts.Trace, bins int, fill color.Color) error {
	samples, _ := tr.X.Floats()
	if len(samples) == 0 {
		return nil
	}
	hist, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return err
	}
	hist.FillColor = fill
	p.Add(hist)
	return nil
}
