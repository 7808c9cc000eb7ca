// internal/charts/adapter.go

// Package charts turns benchmark statistics into chart specifications and hands
// them to a Renderer. It performs no statistics of its own: means, deviations
// and histogram bins are either supplied by the benchmarking harness or left
// to the plotting library.
package charts

import "errors"

const (
	// ComparisonTargetID is the conventional element id for the ips comparison chart.
	ComparisonTargetID = "ips-comparison"
	// BoxPlotTargetID is the conventional element id for the run time box plot.
	BoxPlotTargetID = "box-plot"
	// RawRunTimesTargetID is the conventional element id for a job's raw run time chart.
	RawRunTimesTargetID = "raw-run-times"
	// HistogramTargetID is the conventional element id for a job's run time histogram.
	HistogramTargetID = "sorted-run-times"

	runTimeAxisTitle = "Run Time in microseconds"
)

// ErrTargetNotFound is returned by renderers asked to draw into a target they do not know.
var ErrTargetNotFound = errors.New("render target not found")

// JobStatistics is the subset of a job's statistics the charts display.
type JobStatistics struct {
	IPS       float64 `json:"ips"`
	StdDevIPS float64 `json:"std_dev_ips"`
}

// Statistics maps job names to their statistics.
type Statistics map[string]JobStatistics

// RunTimes maps job names to raw run time samples in microseconds.
type RunTimes map[string][]float64

// SortOrder lists job names in display order.
type SortOrder []string

// Target identifies where a chart is drawn. JobName is only meaningful for
// single-job charts.
type Target struct {
	ID      string
	JobName string
}

// Renderer draws one chart at a target. Implementations that do not know the
// target return an error wrapping ErrTargetNotFound.
type Renderer interface {
	Render(target Target, traces []Trace, layout Layout, opts Options) error
}

// Adapter builds chart specifications and renders them.
type Adapter struct {
	renderer Renderer
}

// NewAdapter returns an Adapter that draws through r.
func NewAdapter(r Renderer) *Adapter {
	return &Adapter{renderer: r}
}

// RenderComparisonChart draws average iterations per second for every job in order.
func (a *Adapter) RenderComparisonChart(target Target, stats Statistics, order SortOrder, titleSuffix string) error {
	return a.draw(target, ComparisonSpec(stats, order, titleSuffix))
}

// RenderBoxPlot draws one box per job in order.
func (a *Adapter) RenderBoxPlot(target Target, runTimes RunTimes, order SortOrder, titleSuffix string) error {
	return a.draw(target, BoxPlotSpec(runTimes, order, titleSuffix))
}

// RenderRawRunTimeChart draws the samples of target.JobName in measured order.
func (a *Adapter) RenderRawRunTimeChart(target Target, samples []float64, titleSuffix string) error {
	return a.draw(target, RawRunTimeSpec(target.JobName, samples, titleSuffix))
}

// RenderRunTimeHistogram draws the distribution of target.JobName's samples.
func (a *Adapter) RenderRunTimeHistogram(target Target, samples []float64, titleSuffix string) error {
	return a.draw(target, HistogramSpec(target.JobName, samples, titleSuffix))
}

func (a *Adapter) draw(target Target, spec ChartSpec) error {
	return a.renderer.Render(target, spec.Traces, spec.Layout, spec.Options)
}

// ComparisonSpec builds a bar chart of ips with standard deviation error bars.
// A job missing from stats leaves a nil entry at its position.
func ComparisonSpec(stats Statistics, order SortOrder, titleSuffix string) ChartSpec {
	names := make([]string, 0, len(order))
	ips := make(Series, 0, len(order))
	errs := make(Series, 0, len(order))
	for _, name := range order {
		names = append(names, name)
		s, ok := stats[name]
		if !ok {
			ips = append(ips, nil)
			errs = append(errs, nil)
			continue
		}
		ips = append(ips, s.IPS)
		errs = append(errs, s.StdDevIPS)
	}

	return ChartSpec{
		Traces: []Trace{{
			Type: TraceBar,
			X:    Categories(names),
			Y:    ips,
			ErrorY: &ErrorBars{
				Type:    "data",
				Array:   errs,
				Visible: true,
			},
		}},
		Layout: Layout{
			Title: "Average Iterations per Second" + titleSuffix,
			YAxis: &Axis{Title: "Iterations per Second"},
		},
		Options: DefaultOptions,
	}
}

// BoxPlotSpec builds one box trace per job, named after the job.
func BoxPlotSpec(runTimes RunTimes, order SortOrder, titleSuffix string) ChartSpec {
	traces := make([]Trace, 0, len(order))
	for _, name := range order {
		traces = append(traces, Trace{
			Type: TraceBox,
			Name: name,
			Y:    Numbers(runTimes[name]),
		})
	}
	return ChartSpec{
		Traces: traces,
		Layout: Layout{
			Title: "Run Time Boxplot" + titleSuffix,
			YAxis: &Axis{Title: runTimeAxisTitle},
		},
		Options: DefaultOptions,
	}
}

// RawRunTimeSpec builds a bar per sample; the x axis is the sample index.
func RawRunTimeSpec(jobName string, samples []float64, titleSuffix string) ChartSpec {
	return ChartSpec{
		Traces: []Trace{{
			Type: TraceBar,
			Y:    Numbers(samples),
		}},
		Layout: Layout{
			Title: jobName + " Raw Run Times" + titleSuffix,
			XAxis: &Axis{Title: "Sample number"},
			YAxis: &Axis{Title: runTimeAxisTitle},
		},
		Options: DefaultOptions,
	}
}

// HistogramSpec builds a histogram over the samples. Binning is left to the renderer.
func HistogramSpec(jobName string, samples []float64, titleSuffix string) ChartSpec {
	return ChartSpec{
		Traces: []Trace{{
			Type: TraceHistogram,
			X:    Numbers(samples),
		}},
		Layout: Layout{
			Title: jobName + " Run Times Histogram" + titleSuffix,
			XAxis: &Axis{Title: "Raw run time buckets in microseconds"},
			YAxis: &Axis{Title: "Occurrences in sample"},
		},
		Options: DefaultOptions,
	}
}
