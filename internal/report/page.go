// internal/report/page.go
package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
)

// DefaultPlotlyURL is the script the generated pages load Plotly from.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Link is a navigation entry rendered above the charts.
type Link struct {
	Label string
	Href  string
}

type element struct {
	target charts.Target
	plot   *plotCall
}

type plotCall struct {
	Traces  []charts.Trace `json:"traces"`
	Layout  charts.Layout  `json:"layout"`
	Options charts.Options `json:"options"`
}

// Page is a standalone HTML document with one element per declared target.
// It implements charts.Renderer; a Page is not safe for concurrent use.
type Page struct {
	Title     string
	PlotlyURL string
	Links     []Link

	elements []*element
	index    map[string]*element
}

// NewPage returns an empty page. An empty plotlyURL selects DefaultPlotlyURL.
func NewPage(title, plotlyURL string) *Page {
	if plotlyURL == "" {
		plotlyURL = DefaultPlotlyURL
	}
	return &Page{
		Title:     title,
		PlotlyURL: plotlyURL,
		index:     make(map[string]*element),
	}
}

// AddTarget declares an element that charts can be rendered into. Declaring an
// id twice updates its job name and keeps its original position.
func (p *Page) AddTarget(target charts.Target) {
	if el, ok := p.index[target.ID]; ok {
		el.target = target
		return
	}
	el := &element{target: target}
	p.elements = append(p.elements, el)
	p.index[target.ID] = el
}

// Render stores a plot for a declared target, replacing any earlier plot there.
func (p *Page) Render(target charts.Target, traces []charts.Trace, layout charts.Layout, opts charts.Options) error {
	el, ok := p.index[target.ID]
	if !ok {
		return fmt.Errorf("page %q has no element %q: %w", p.Title, target.ID, charts.ErrTargetNotFound)
	}
	el.plot = &plotCall{Traces: traces, Layout: layout, Options: opts}
	logging.LogRender("page", target.ID, target.JobName, layout.Title)
	return nil
}

// Rendered reports whether a plot has been stored for the target id.
func (p *Page) Rendered(id string) bool {
	el, ok := p.index[id]
	return ok && el.plot != nil
}

type pageElement struct {
	ID      string
	JobName string
	Plot    template.JS
}

type pageData struct {
	Title     string
	PlotlyURL string
	Links     []Link
	Elements  []pageElement
}

// WriteHTML writes the page. Every rendered element gets one Plotly.newPlot call.
func (p *Page) WriteHTML(w io.Writer) error {
	data := pageData{
		Title:     p.Title,
		PlotlyURL: p.PlotlyURL,
		Links:     p.Links,
		Elements:  make([]pageElement, 0, len(p.elements)),
	}
	for _, el := range p.elements {
		pe := pageElement{ID: el.target.ID, JobName: el.target.JobName}
		if el.plot != nil {
			payload, err := json.Marshal(el.plot)
			if err != nil {
				return fmt.Errorf("marshal plot %q: %w", el.target.ID, err)
			}
			pe.Plot = template.JS(payload)
		}
		data.Elements = append(data.Elements, pe)
	}
	return pageTemplate.Execute(w, data)
}

var pageTemplate = template.Must(template.New("chart-page").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <script src="{{ .PlotlyURL }}"></script>
  <style>
    body { font-family: sans-serif; margin: 2rem; color: #0F172A; background: #F1F5F9; }
    nav a { margin-right: 1rem; color: #3B82F6; }
    .chart { background: #FFFFFF; border: 1px solid #E2E8F0; border-radius: 12px; margin: 1.5rem 0; min-height: 450px; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  {{- if .Links }}
  <nav>
    {{- range .Links }}
    <a href="{{ .Href }}">{{ .Label }}</a>
    {{- end }}
  </nav>
  {{- end }}
  {{- range .Elements }}
  <div id="{{ .ID }}" class="chart"{{ if .JobName }} data-job-name="{{ .JobName }}"{{ end }}></div>
  {{- end }}
  <script>
  {{- range .Elements }}{{ if .Plot }}
    (function () {
      var plot = {{ .Plot }};
      Plotly.newPlot(document.getElementById({{ .ID }}), plot.traces, plot.layout, plot.options);
    })();
  {{- end }}{{ end }}
  </script>
</body>
</html>
`
