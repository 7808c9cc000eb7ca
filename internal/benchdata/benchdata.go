// Package benchdata loads benchmark harness results files.
package benchdata

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mwiater/benchcharts/internal/charts"
	"github.com/mwiater/benchcharts/internal/logging"
)

// Suite is the result of running every job against one input.
type Suite struct {
	Input      string            `json:"input,omitempty"`
	Statistics charts.Statistics `json:"statistics"`
	RunTimes   charts.RunTimes   `json:"run_times"`
	SortOrder  charts.SortOrder  `json:"sort_order,omitempty"`
}

// Results is the top-level document written by the harness.
type Results struct {
	Suites []Suite `json:"suites"`
}

// TitleSuffix is appended to chart titles to tell inputs apart. Suites without
// an input name get an empty suffix.
func (s Suite) TitleSuffix() string {
	input := strings.TrimSpace(s.Input)
	if input == "" {
		return ""
	}
	return " (" + input + ")"
}

// DefaultSortOrder orders jobs by iterations per second, fastest first, and by
// name when equal.
func DefaultSortOrder(stats charts.Statistics) charts.SortOrder {
	order := make(charts.SortOrder, 0, len(stats))
	for name := range stats {
		order = append(order, name)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := stats[order[i]], stats[order[j]]
		if a.IPS != b.IPS {
			return a.IPS > b.IPS
		}
		return order[i] < order[j]
	})
	return order
}

// Load reads, validates and decodes a results file.
func Load(path string) ([]Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read results file %s", path)
	}
	suites, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse results file %s", path)
	}
	return suites, nil
}

// Parse validates data against the results schema and decodes it. Suites
// without a sort order get DefaultSortOrder.
func Parse(data []byte) ([]Suite, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, errors.Wrap(err, "unable to decode results")
	}
	for i := range results.Suites {
		suite := &results.Suites[i]
		if len(suite.SortOrder) == 0 {
			suite.SortOrder = DefaultSortOrder(suite.Statistics)
			logging.LogDebug("suite %d %q has no sort_order, ordering by ips: %v", i, suite.Input, suite.SortOrder)
		}
	}
	return results.Suites, nil
}

// Validate checks data against the results schema and reports every violation.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(resultsSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(err, "schema validation error")
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return errors.Errorf("results failed validation: %s", strings.Join(details, "; "))
}

const resultsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["suites"],
  "properties": {
    "suites": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["statistics", "run_times"],
        "properties": {
          "input": {"type": "string"},
          "statistics": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "required": ["ips", "std_dev_ips"],
              "properties": {
                "ips": {"type": "number"},
                "std_dev_ips": {"type": "number", "minimum": 0}
              }
            }
          },
          "run_times": {
            "type": "object",
            "additionalProperties": {
              "type": "array",
              "items": {"type": "number"}
            }
          },
          "sort_order": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`
