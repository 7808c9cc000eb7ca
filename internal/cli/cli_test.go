// internal/cli/cli_test.go
package benchcharts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/benchcharts/internal/benchdata"
	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
)

const resultsJSON = `{
  "suites": [{
    "input": "Small List",
    "statistics": {
      "flat_map":    {"ips": 2000, "std_dev_ips": 50},
      "map.flatten": {"ips": 1000, "std_dev_ips": 10}
    },
    "run_times": {
      "flat_map":    [500, 510, 490],
      "map.flatten": [1000, 990]
    }
  }]
}`

func writeResults(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "results.json")
	if err := os.WriteFile(path, []byte(resultsJSON), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
	return dir, path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		reportOpts = reportOptions{}
		summaryInput = ""
		_ = logging.Close()
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReportHTMLCommand(t *testing.T) {
	dir, input := writeResults(t)
	outDir := filepath.Join(dir, "html")

	out, err := runRoot(t,
		"--config", filepath.Join(dir, "missing.json"),
		"--outputDir", outDir,
		"report", "html", "--input", input, "--prefix", "bench",
	)
	if err != nil {
		t.Fatalf("report html error: %v\n%s", err, out)
	}
	for _, name := range []string{"bench.html", "bench_small_list_comparison.html", "bench_small_list_flat_map.html", "bench_small_list_map_flatten.html"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output, got: %s", name, out)
		}
	}
}

func TestReportHTMLDebugLogsOptions(t *testing.T) {
	dir, input := writeResults(t)
	logPath := filepath.Join(dir, "debug.log")
	t.Cleanup(func() {
		for name, value := range map[string]string{"debug": "false", "logFile": ""} {
			flag := rootCmd.PersistentFlags().Lookup(name)
			_ = flag.Value.Set(value)
			flag.Changed = false
		}
	})

	out, err := runRoot(t,
		"--config", filepath.Join(dir, "missing.json"),
		"--outputDir", filepath.Join(dir, "html"),
		"--debug", "--logFile", logPath,
		"report", "html", "--input", input, "--prefix", "bench", "--title", "Nightly",
	)
	if err != nil {
		t.Fatalf("report html error: %v\n%s", err, out)
	}
	_ = logging.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `report html: output=`+filepath.Join(dir, "html")+` prefix=bench title="Nightly"`) {
		t.Fatalf("expected resolved options in debug log, got: %s", content)
	}
	if !strings.Contains(content, "[PAGE] target=ips-comparison") {
		t.Fatalf("expected render log lines, got: %s", content)
	}
}

func TestReportRequiresInput(t *testing.T) {
	dir := t.TempDir()
	out, err := runRoot(t, "--config", filepath.Join(dir, "missing.json"), "report", "html")
	if err == nil {
		t.Fatalf("expected error without --input, got output: %s", out)
	}
	if !strings.Contains(err.Error(), "--input") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportImagesCommandRejectsFormat(t *testing.T) {
	dir, input := writeResults(t)
	_, err := runRoot(t,
		"--config", filepath.Join(dir, "missing.json"),
		"--outputDir", filepath.Join(dir, "img"),
		"report", "images", "--input", input, "--format", "bmp",
	)
	if err == nil || !strings.Contains(err.Error(), "unsupported image format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestSummaryTable(t *testing.T) {
	suite := benchdata.Suite{
		Input:      "Small List",
		Statistics: charts.Statistics{"fast": {IPS: 200, StdDevIPS: 5}},
		RunTimes:   charts.RunTimes{"fast": {1, 2, 3}, "ghost": {4}},
		SortOrder:  charts.SortOrder{"fast", "ghost"},
	}
	var buf bytes.Buffer
	writeSummary(&buf, []benchdata.Suite{suite})
	out := buf.String()

	for _, want := range []string{"Input: Small List", "fast", "200.00", "±2.50%", "ghost", "n/a"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "fast") > strings.Index(out, "ghost") {
		t.Fatalf("expected display order to be kept, got:\n%s", out)
	}
}

func TestDeviation(t *testing.T) {
	if got := deviation(0, 3); got != "±3.00" {
		t.Fatalf("deviation with zero ips: %s", got)
	}
	if got := deviation(400, 4); got != "±1.00%" {
		t.Fatalf("deviation: %s", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Fatalf("firstNonEmpty: %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("firstNonEmpty with no values: %q", got)
	}
}
