// internal/report/generate.go
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/benchcharts/internal/benchdata"
	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
)

// Options controls where and how the HTML report is written.
type Options struct {
	OutputDir string
	Prefix    string
	Title     string
	PlotlyURL string
}

const (
	defaultPrefix = "benchcharts"
	defaultTitle  = "Benchmark Report"
)

// Generate writes a comparison page per suite, a detail page per job and an
// index page linking them. It returns the written paths, index last. Inputs
// or jobs whose names slug to the same text get numbered file names, so no
// page overwrites another.
func Generate(suites []benchdata.Suite, opts Options) ([]string, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if strings.TrimSpace(opts.Prefix) == "" {
		opts.Prefix = defaultPrefix
	}
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = defaultTitle
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create report directory %s: %w", opts.OutputDir, err)
	}

	var written []string
	var index []Link
	inputs := Names{}
	files := Names{opts.Prefix: 1}
	for _, suite := range suites {
		suffix := suite.TitleSuffix()
		inputPart := inputs.Claim(Slug(suite.Input))

		comparisonName := files.Claim(Stem(opts.Prefix, inputPart, "comparison")) + ".html"
		page, err := ComparisonPage(suite, opts.Title+suffix, opts.PlotlyURL)
		if err != nil {
			return written, err
		}
		path, err := writePage(opts.OutputDir, comparisonName, page)
		if err != nil {
			return written, err
		}
		written = append(written, path)
		index = append(index, Link{Label: "Comparison" + suffix, Href: comparisonName})

		for i, job := range suite.SortOrder {
			jobName := files.Claim(Stem(opts.Prefix, inputPart, JobSlug(job, i+1))) + ".html"
			page, err := JobPage(job, suite.RunTimes[job], suffix, opts.PlotlyURL)
			if err != nil {
				return written, err
			}
			page.Links = []Link{{Label: "Back to comparison", Href: comparisonName}}
			path, err := writePage(opts.OutputDir, jobName, page)
			if err != nil {
				return written, err
			}
			written = append(written, path)
			index = append(index, Link{Label: job + suffix, Href: jobName})
		}
	}

	indexPage := NewPage(opts.Title, opts.PlotlyURL)
	indexPage.Links = index
	path, err := writePage(opts.OutputDir, opts.Prefix+".html", indexPage)
	if err != nil {
		return written, err
	}
	written = append(written, path)
	return written, nil
}

// ComparisonPage builds a page holding the ips comparison and the box plot.
func ComparisonPage(suite benchdata.Suite, title, plotlyURL string) (*Page, error) {
	page := NewPage(title, plotlyURL)
	ips := charts.Target{ID: charts.ComparisonTargetID}
	box := charts.Target{ID: charts.BoxPlotTargetID}
	page.AddTarget(ips)
	page.AddTarget(box)

	adapter := charts.NewAdapter(page)
	suffix := suite.TitleSuffix()
	if err := adapter.RenderComparisonChart(ips, suite.Statistics, suite.SortOrder, suffix); err != nil {
		return nil, err
	}
	if err := adapter.RenderBoxPlot(box, suite.RunTimes, suite.SortOrder, suffix); err != nil {
		return nil, err
	}
	return page, nil
}

// JobPage builds a page holding one job's raw run times and histogram.
func JobPage(job string, samples []float64, titleSuffix, plotlyURL string) (*Page, error) {
	page := NewPage(job+titleSuffix, plotlyURL)
	raw := charts.Target{ID: charts.RawRunTimesTargetID, JobName: job}
	hist := charts.Target{ID: charts.HistogramTargetID, JobName: job}
	page.AddTarget(raw)
	page.AddTarget(hist)

	adapter := charts.NewAdapter(page)
	if err := adapter.RenderRawRunTimeChart(raw, samples, titleSuffix); err != nil {
		return nil, err
	}
	if err := adapter.RenderRunTimeHistogram(hist, samples, titleSuffix); err != nil {
		return nil, err
	}
	return page, nil
}

func writePage(dir, name string, page *Page) (string, error) {
	var buf bytes.Buffer
	if err := page.WriteHTML(&buf); err != nil {
		return "", fmt.Errorf("failed rendering %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("unable to write HTML report %s: %w", path, err)
	}
	logging.LogEvent("report page written: %s", path)
	return path, nil
}

// Stem joins the non-empty parts with underscores.
func Stem(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "_")
}

// Slug lowercases s and replaces every run of non-alphanumeric characters with
// a single underscore.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
