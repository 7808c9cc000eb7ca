// internal/cli/report.go
package benchcharts

import (
	"io"

	"github.com/fatih/color"
	"github.com/mwiater/benchcharts/internal/imageplot"
	"github.com/mwiater/benchcharts/internal/logging"
	"github.com/mwiater/benchcharts/internal/report"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	inputPath string
	prefix    string
	title     string
	format    string
}

var reportOpts reportOptions

// reportCmd hosts commands that turn benchmark results into charts.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render benchmark results as charts",
	Long: `Tools for presenting benchmark results. Use these commands to turn a results
file into an interactive HTML report or a set of static chart images.`,
}

// reportHTMLCmd writes the Plotly HTML pages.
var reportHTMLCmd = &cobra.Command{
	Use:   "html",
	Short: "Generate an interactive HTML report",
	Long: `Read a benchmark results file and write one comparison page per input, one
detail page per job and an index page linking them. Charts are drawn in the
browser by Plotly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suites, err := loadSuites(reportOpts.inputPath, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		cfg := GetConfig()
		opts := report.Options{
			OutputDir: cfg.OutputDirectory(),
			Prefix:    firstNonEmpty(reportOpts.prefix, cfg.Prefix()),
			Title:     firstNonEmpty(reportOpts.title, cfg.Title()),
			PlotlyURL: cfg.PlotlyScript(),
		}
		logging.LogDebug("report html: output=%s prefix=%s title=%q plotly=%s", opts.OutputDir, opts.Prefix, opts.Title, opts.PlotlyURL)
		paths, err := report.Generate(suites, opts)
		printWritten(cmd.OutOrStdout(), "Report page written to", paths)
		return err
	},
}

// reportImagesCmd writes static chart images.
var reportImagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Generate static chart images",
	Long: `Read a benchmark results file and save the comparison chart, box plot, raw
run time chart and histogram as PNG or SVG files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suites, err := loadSuites(reportOpts.inputPath, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		cfg := GetConfig()
		width, height := cfg.ImageSize()
		opts := imageplot.Options{
			Dir:      cfg.OutputDirectory(),
			Format:   firstNonEmpty(reportOpts.format, cfg.Format()),
			WidthCm:  width,
			HeightCm: height,
			Bins:     cfg.Bins(),
		}
		prefix := firstNonEmpty(reportOpts.prefix, cfg.Prefix())
		logging.LogDebug("report images: output=%s prefix=%s format=%s size=%.1fx%.1fcm bins=%d", opts.Dir, prefix, opts.Format, opts.WidthCm, opts.HeightCm, opts.Bins)
		paths, err := imageplot.Generate(suites, prefix, opts)
		printWritten(cmd.OutOrStdout(), "Chart image written to", paths)
		return err
	},
}

func init() {
	reportCmd.PersistentFlags().StringVar(&reportOpts.inputPath, "input", "", "Path to the benchmark results JSON (required)")
	reportCmd.PersistentFlags().StringVar(&reportOpts.prefix, "prefix", "", "File name prefix for generated files (defaults to reportPrefix)")
	reportHTMLCmd.Flags().StringVar(&reportOpts.title, "title", "", "Report heading (defaults to reportTitle)")
	reportImagesCmd.Flags().StringVar(&reportOpts.format, "format", "", "Image format: png or svg (defaults to imageFormat)")

	reportCmd.AddCommand(reportHTMLCmd)
	reportCmd.AddCommand(reportImagesCmd)
	rootCmd.AddCommand(reportCmd)
}

func printWritten(out io.Writer, label string, paths []string) {
	ok := color.New(color.FgGreen)
	for _, p := range paths {
		ok.Fprintf(out, "%s %s\n", label, p)
	}
	if len(paths) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No files written")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
