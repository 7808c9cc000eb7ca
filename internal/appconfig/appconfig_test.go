// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"strings"
	"testing"
)

// TestValidate checks that supported image formats pass regardless of case,
// and that unsupported formats or negative bin counts are rejected.
func TestValidate(t *testing.T) {
	for _, cfg := range []Config{{}, {ImageFormat: "SVG"}, {ImageFormat: "png", HistogramBins: 8}} {
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(%+v) failed: %v", cfg, err)
		}
	}
	if err := (Config{ImageFormat: "gif"}).Validate(); err == nil {
		t.Fatal("Validate() with unsupported image format should have failed")
	}
	if err := (Config{HistogramBins: -1}).Validate(); err == nil {
		t.Fatal("Validate() with negative bins should have failed")
	}
}

func TestAccessors(t *testing.T) {
	cfg := Config{
		LogFile:       " bench.log ",
		OutputDir:     "out",
		ReportPrefix:  "suite",
		ImageFormat:   "SVG",
		ImageWidthCm:  30,
		HistogramBins: 32,
	}
	if cfg.LogFilePath() != "bench.log" {
		t.Fatalf("unexpected log path %q", cfg.LogFilePath())
	}
	if cfg.OutputDirectory() != "out" {
		t.Fatalf("expected output dir out, got %q", cfg.OutputDirectory())
	}
	if cfg.Prefix() != "suite" {
		t.Fatalf("expected prefix suite, got %q", cfg.Prefix())
	}
	if cfg.Format() != "svg" {
		t.Fatalf("expected svg format, got %q", cfg.Format())
	}
	if w, h := cfg.ImageSize(); w != 30 || h != 12 {
		t.Fatalf("unexpected image size %vx%v", w, h)
	}
	if cfg.Bins() != 32 {
		t.Fatalf("expected 32 bins, got %d", cfg.Bins())
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.OutputDirectory() != "reports" {
		t.Fatalf("unexpected default output dir %q", cfg.OutputDirectory())
	}
	if cfg.Prefix() != "benchcharts" {
		t.Fatalf("unexpected default prefix %q", cfg.Prefix())
	}
	if cfg.Title() != "Benchmark Report" {
		t.Fatalf("unexpected default title %q", cfg.Title())
	}
	if cfg.PlotlyScript() == "" {
		t.Fatal("expected a default Plotly URL")
	}
	w, h := cfg.ImageSize()
	if w != 20 || h != 12 {
		t.Fatalf("unexpected default image size %vx%v", w, h)
	}
	if cfg.Bins() != 16 {
		t.Fatalf("unexpected default bins %d", cfg.Bins())
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.LogFilePath())
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil)
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected default notice, got: %s", out)
	}
	if !strings.Contains(out, "Histogram Bins: 16") {
		t.Fatalf("expected default bins, got: %s", out)
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.json", &Config{ImageFormat: "svg", LogFile: "bench.log"})
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("expected config file line, got: %s", out)
	}
	if !strings.Contains(out, "Image Format:   svg") || !strings.Contains(out, "Log File:       bench.log") {
		t.Fatalf("expected configured values, got: %s", out)
	}
}
