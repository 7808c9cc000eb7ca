package benchdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
)

const validResults = `{
  "suites": [
    {
      "input": "Big List",
      "statistics": {
        "flat_map":    {"ips": 1200.5, "std_dev_ips": 30},
        "map.flatten": {"ips": 800, "std_dev_ips": 12.25}
      },
      "run_times": {
        "flat_map":    [830, 812, 845],
        "map.flatten": [1250, 1240]
      }
    },
    {
      "statistics": {
        "a": {"ips": 5, "std_dev_ips": 1},
        "b": {"ips": 9, "std_dev_ips": 2}
      },
      "run_times": {"a": [1], "b": [2]},
      "sort_order": ["a", "b"]
    }
  ]
}`

func TestParse(t *testing.T) {
	suites, err := Parse([]byte(validResults))
	require.NoError(t, err)
	require.Len(t, suites, 2)

	first := suites[0]
	assert.Equal(t, "Big List", first.Input)
	assert.Equal(t, charts.SortOrder{"flat_map", "map.flatten"}, first.SortOrder)
	assert.Equal(t, charts.JobStatistics{IPS: 800, StdDevIPS: 12.25}, first.Statistics["map.flatten"])
	assert.Equal(t, []float64{830, 812, 845}, first.RunTimes["flat_map"])
	assert.Equal(t, " (Big List)", first.TitleSuffix())

	second := suites[1]
	assert.Equal(t, charts.SortOrder{"a", "b"}, second.SortOrder, "explicit order is kept")
	assert.Equal(t, "", second.TitleSuffix())
}

func TestValidateReportsViolations(t *testing.T) {
	cases := map[string]string{
		"missing suites":    `{}`,
		"missing run times": `{"suites":[{"statistics":{}}]}`,
		"ips not a number":  `{"suites":[{"statistics":{"a":{"ips":"fast","std_dev_ips":1}},"run_times":{}}]}`,
		"negative stddev":   `{"suites":[{"statistics":{"a":{"ips":1,"std_dev_ips":-1}},"run_times":{}}]}`,
		"sample not number": `{"suites":[{"statistics":{},"run_times":{"a":[1,"x"]}}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate([]byte(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "results failed validation")
		})
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	err := Validate([]byte(`{"suites": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation error")
}

func TestDefaultSortOrder(t *testing.T) {
	order := DefaultSortOrder(charts.Statistics{
		"slow":   {IPS: 10},
		"fast":   {IPS: 1000},
		"medium": {IPS: 100},
		"also":   {IPS: 100},
	})
	assert.Equal(t, charts.SortOrder{"fast", "also", "medium", "slow"}, order)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(validResults), 0o644))

	suites, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, suites, 2)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read results file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsInvalidResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"suites": [{"statistics": {}}]}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse results file "+path+": results failed validation")
	assert.Contains(t, err.Error(), "run_times")
}

func TestParseLogsDefaultedSortOrder(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, logging.Init(logPath, true))
	t.Cleanup(func() { _ = logging.Close() })

	_, err := Parse([]byte(validResults))
	require.NoError(t, err)
	require.NoError(t, logging.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `suite 0 "Big List" has no sort_order, ordering by ips: [flat_map map.flatten]`)
	assert.NotContains(t, string(data), "suite 1")
}
