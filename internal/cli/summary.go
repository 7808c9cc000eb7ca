// internal/cli/summary.go
package benchcharts

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/benchcharts/internal/benchdata"
	"github.com/spf13/cobra"
)

var summaryInput string

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	missingStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("208"))
)

// summaryCmd prints the statistics of every suite in display order.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print benchmark statistics as tables",
	Long: `Read a benchmark results file and print one table per input listing each
job's iterations per second, standard deviation and sample count in display order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suites, err := loadSuites(summaryInput, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		writeSummary(cmd.OutOrStdout(), suites)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryInput, "input", "", "Path to the benchmark results JSON (required)")
	rootCmd.AddCommand(summaryCmd)
}

func writeSummary(out io.Writer, suites []benchdata.Suite) {
	for i, suite := range suites {
		if i > 0 {
			fmt.Fprintln(out)
		}
		heading := "Results"
		if suite.Input != "" {
			heading = "Input: " + suite.Input
		}
		fmt.Fprintln(out, headingStyle.Render(heading))
		fmt.Fprintln(out, summaryTable(suite))
	}
}

func summaryTable(suite benchdata.Suite) string {
	var missing []bool
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Job", "ips", "deviation", "samples")

	for _, name := range suite.SortOrder {
		stats, ok := suite.Statistics[name]
		missing = append(missing, !ok)
		if !ok {
			t.Row(name, "n/a", "n/a", fmt.Sprintf("%d", len(suite.RunTimes[name])))
			continue
		}
		t.Row(
			name,
			fmt.Sprintf("%.2f", stats.IPS),
			deviation(stats.IPS, stats.StdDevIPS),
			fmt.Sprintf("%d", len(suite.RunTimes[name])),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row >= 0 && row < len(missing) && missing[row]:
			return missingStyle
		default:
			return cellStyle
		}
	})
	return t.String()
}

// deviation formats the standard deviation relative to the mean ips.
func deviation(ips, stdDev float64) string {
	if ips == 0 {
		return fmt.Sprintf("±%.2f", stdDev)
	}
	return fmt.Sprintf("±%.2f%%", stdDev/ips*100)
}
