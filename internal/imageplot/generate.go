package imageplot

import (
	"github.com/mwiater/benchcharts/internal/benchdata"
	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
	"github.com/mwiater/benchcharts/internal/report"
)

// Generate saves the comparison and box plot of every suite and the raw run
// time chart and histogram of every job. It returns the saved file paths.
// Colliding names are numbered the same way report.Generate numbers them.
func Generate(suites []benchdata.Suite, prefix string, opts Options) ([]string, error) {
	r, err := New(opts)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "benchcharts"
	}
	adapter := charts.NewAdapter(r)
	inputs := report.Names{}
	files := report.Names{}

	for _, suite := range suites {
		suffix := suite.TitleSuffix()
		input := inputs.Claim(report.Slug(suite.Input))

		ips := charts.Target{ID: charts.ComparisonTargetID}
		box := charts.Target{ID: charts.BoxPlotTargetID}
		r.Allow(ips.ID, files.Claim(report.Stem(prefix, input, "ips")))
		r.Allow(box.ID, files.Claim(report.Stem(prefix, input, "boxplot")))
		if err := adapter.RenderComparisonChart(ips, suite.Statistics, suite.SortOrder, suffix); err != nil {
			return r.Written(), err
		}
		if err := adapter.RenderBoxPlot(box, suite.RunTimes, suite.SortOrder, suffix); err != nil {
			return r.Written(), err
		}

		for i, job := range suite.SortOrder {
			raw := charts.Target{ID: charts.RawRunTimesTargetID, JobName: job}
			hist := charts.Target{ID: charts.HistogramTargetID, JobName: job}
			jobPart := report.JobSlug(job, i+1)
			r.Allow(raw.ID, files.Claim(report.Stem(prefix, input, jobPart, "raw")))
			r.Allow(hist.ID, files.Claim(report.Stem(prefix, input, jobPart, "histogram")))
			if err := adapter.RenderRawRunTimeChart(raw, suite.RunTimes[job], suffix); err != nil {
				return r.Written(), err
			}
			if err := adapter.RenderRunTimeHistogram(hist, suite.RunTimes[job], suffix); err != nil {
				return r.Written(), err
			}
		}
	}

	logging.LogEvent("saved %d chart images to %s", len(r.Written()), r.opts.Dir)
	return r.Written(), nil
}
