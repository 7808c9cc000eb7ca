package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	width, height := cfg.ImageSize()
	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(stdout only)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:       %s\n", logFile)
	fmt.Fprintf(out, "  Output Dir:     %s\n", cfg.OutputDirectory())
	fmt.Fprintf(out, "  Report Prefix:  %s\n", cfg.Prefix())
	fmt.Fprintf(out, "  Report Title:   %s\n", cfg.Title())
	fmt.Fprintf(out, "  Plotly URL:     %s\n", cfg.PlotlyScript())
	fmt.Fprintf(out, "  Image Format:   %s\n", cfg.Format())
	fmt.Fprintf(out, "  Image Size:     %.1fcm x %.1fcm\n", width, height)
	fmt.Fprintf(out, "  Histogram Bins: %d\n", cfg.Bins())
}
