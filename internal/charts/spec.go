// internal/charts/spec.go
package charts

// TraceType names a plotting library series kind.
type TraceType string

const (
	TraceBar       TraceType = "bar"
	TraceBox       TraceType = "box"
	TraceHistogram TraceType = "histogram"
)

// Series is a loosely typed data array as the plotting library expects it.
// Elements are strings, float64 values, or nil for a missing value.
type Series []any

// Categories builds a Series of labels.
func Categories(names []string) Series {
	s := make(Series, len(names))
	for i, name := range names {
		s[i] = name
	}
	return s
}

// Numbers builds a Series from samples, preserving their order.
// A nil slice yields an empty, non-nil Series.
func Numbers(values []float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = v
	}
	return s
}

// Floats returns the numeric elements of s. Missing or non-numeric elements are
// reported through ok=false at the same index.
func (s Series) Floats() (values []float64, ok []bool) {
	values = make([]float64, len(s))
	ok = make([]bool, len(s))
	for i, v := range s {
		if f, isFloat := v.(float64); isFloat {
			values[i] = f
			ok[i] = true
		}
	}
	return values, ok
}

// Strings returns the elements of s formatted as labels.
func (s Series) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		if str, isString := v.(string); isString {
			out[i] = str
		}
	}
	return out
}

// ErrorBars describes symmetric error bars taken from a data array.
type ErrorBars struct {
	Type    string `json:"type"`
	Array   Series `json:"array"`
	Visible bool   `json:"visible"`
}

// Trace is one data series descriptor.
type Trace struct {
	Type   TraceType  `json:"type"`
	Name   string     `json:"name,omitempty"`
	X      Series     `json:"x,omitempty"`
	Y      Series     `json:"y,omitempty"`
	ErrorY *ErrorBars `json:"error_y,omitempty"`
}

// Axis holds presentation settings for one axis.
type Axis struct {
	Title string `json:"title"`
}

// Layout holds chart-level presentation settings.
type Layout struct {
	Title string `json:"title"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
}

// Options is the per-plot configuration passed alongside traces and layout.
type Options struct {
	DisplayLogo bool `json:"displaylogo"`
}

// DefaultOptions is the only configuration the adapter ever hands to a renderer.
var DefaultOptions = Options{DisplayLogo: false}

// ChartSpec bundles everything a renderer needs to draw one chart.
type ChartSpec struct {
	Traces  []Trace `json:"data"`
	Layout  Layout  `json:"layout"`
	Options Options `json:"config"`
}
