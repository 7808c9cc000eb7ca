// internal/appconfig/appconfig.go
// Package appconfig interprets application configuration and applies defaults.
package appconfig

import (
	"fmt"
	"strings"

	"github.com/mwiater/benchcharts/internal/report"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultOutputDir is where reports and images go when the config omits it.
	defaultOutputDir = "reports"
	// defaultReportPrefix names the index page and prefixes every generated file.
	defaultReportPrefix = "benchcharts"
	// defaultReportTitle heads every generated page.
	defaultReportTitle = "Benchmark Report"
	defaultImageFormat = "png"
	defaultImageWidth  = 20.0
	defaultImageHeight = 12.0
	defaultBins        = 16
)

// Config represents the top-level application configuration.
type Config struct {
	Debug         bool    `json:"debug"`
	LogFile       string  `json:"logFile,omitempty"`
	OutputDir     string  `json:"outputDir,omitempty"`
	ReportPrefix  string  `json:"reportPrefix,omitempty"`
	ReportTitle   string  `json:"reportTitle,omitempty"`
	PlotlyURL     string  `json:"plotlyURL,omitempty"`
	ImageFormat   string  `json:"imageFormat,omitempty"`
	ImageWidthCm  float64 `json:"imageWidthCm,omitempty"`
	ImageHeightCm float64 `json:"imageHeightCm,omitempty"`
	HistogramBins int     `json:"histogramBins,omitempty"`
	ConfigPath    string  `json:"-"`
}

// LogFilePath returns the path to the application log file. An empty path
// disables file logging.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// OutputDirectory returns the directory generated files are written to.
func (c Config) OutputDirectory() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return defaultOutputDir
}

// Prefix returns the file name prefix for generated files.
func (c Config) Prefix() string {
	if p := strings.TrimSpace(c.ReportPrefix); p != "" {
		return p
	}
	return defaultReportPrefix
}

// Title returns the report heading.
func (c Config) Title() string {
	if t := strings.TrimSpace(c.ReportTitle); t != "" {
		return t
	}
	return defaultReportTitle
}

// PlotlyScript returns the Plotly script URL embedded in HTML pages.
func (c Config) PlotlyScript() string {
	if u := strings.TrimSpace(c.PlotlyURL); u != "" {
		return u
	}
	return report.DefaultPlotlyURL
}

// Format returns the static image format, png or svg.
func (c Config) Format() string {
	if f := strings.ToLower(strings.TrimSpace(c.ImageFormat)); f != "" {
		return f
	}
	return defaultImageFormat
}

// ImageSize returns the image width and height in centimetres.
func (c Config) ImageSize() (width, height float64) {
	width, height = c.ImageWidthCm, c.ImageHeightCm
	if width <= 0 {
		width = defaultImageWidth
	}
	if height <= 0 {
		height = defaultImageHeight
	}
	return width, height
}

// Bins returns the histogram bin count used for static images.
func (c Config) Bins() int {
	if c.HistogramBins <= 0 {
		return defaultBins
	}
	return c.HistogramBins
}

// Validate reports settings that cannot be applied.
func (c Config) Validate() error {
	if f := c.Format(); f != "png" && f != "svg" {
		return fmt.Errorf("imageFormat must be png or svg, got %q", c.ImageFormat)
	}
	if c.HistogramBins < 0 {
		return fmt.Errorf("histogramBins must not be negative, got %d", c.HistogramBins)
	}
	return nil
}
