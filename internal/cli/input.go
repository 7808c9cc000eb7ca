// internal/cli/input.go
package benchcharts

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/mwiater/benchcharts/internal/benchdata"
	"github.com/mwiater/benchcharts/internal/logging"
)

// loadSuites reads the results file named by --input and, in debug mode,
// dumps the decoded suites to out.
func loadSuites(path string, out io.Writer) ([]benchdata.Suite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("results file is required (pass --input)")
	}
	suites, err := benchdata.Load(path)
	if err != nil {
		return nil, err
	}
	if len(suites) == 0 {
		return nil, fmt.Errorf("results file %s contains no suites", path)
	}
	logging.LogEvent("loaded %d suite(s) from %s", len(suites), path)
	if GetConfig().Debug {
		pp.Fprintln(out, suites)
	}
	return suites, nil
}
