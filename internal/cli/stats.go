package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/campanalytics/funnelboard/internal/funnel"
	"github.com/campanalytics/funnelboard/internal/report"
)

// Stats command flags
var (
	statsSeed     int64
	statsRows     int
	statsMode     string
	statsPeriod   string
	statsFormat   string
	statsScenario string
)

var statsCmd = &cobra.Command{
	Use:   "stats [--format table|json|csv]",
	Short: "Print the funnel summary for a generated dataset",
	Long: `Generate a dataset locally and print its funnel summary and trend.

The same seed always produces the same dataset, so stats output is
reproducible and comparable across runs.

Supported formats:
  table  - Human-readable tables (default)
  json   - JSON object with summary and trend
  csv    - Comma-separated values`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats()
	},
}

func runStats() error {
	scenario := funnel.DefaultScenario()
	var err error
	if statsScenario != "" {
		if scenario, err = funnel.LoadScenario(statsScenario); err != nil {
			return err
		}
	}

	events, err := funnel.GenerateSeed(statsSeed, statsRows, scenario)
	if err != nil {
		return err
	}

	rep, err := report.Build(events, funnel.Period(statsPeriod), funnel.Mode(statsMode))
	if err != nil {
		return err
	}

	switch statsFormat {
	case "json":
		return outputStatsJSON(rep)
	case "csv":
		return rep.WriteCSV(os.Stdout)
	case "table", "":
		return outputStatsTable(rep, statsSeed, statsRows)
	default:
		return fmt.Errorf("%w: unknown format %q", funnel.ErrInvalidArgument, statsFormat)
	}
}

func outputStatsJSON(rep report.Report) error {
	payload := map[string]interface{}{
		"summary": rep.Summary,
		"trend":   rep.Trend,
		"period":  rep.Period,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func outputStatsTable(rep report.Report, seed int64, rows int) error {
	fmt.Printf("Funnel Summary (seed %d, %d rows, mode %s)\n\n", seed, rows, rep.Summary.Mode)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STAGE\tCOUNT\tRATE VS PREVIOUS")
	for _, row := range rep.Summary.Stages {
		fmt.Fprintf(w, "%s\t%d\t%.0f%%\n", row.Stage, row.Count, row.RateVsPrevious*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nReach Rate: %.1f%%  Open Rate: %.1f%%  Click-to-Open: %.1f%%\n\n",
		rep.Summary.ReachRate*100, rep.Summary.OpenRate*100, rep.Summary.ClickToOpen*100)

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tTARGET\tREACH\tOPEN\tCLICK\n", periodHeading(rep.Period))
	for _, bucket := range rep.Trend {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			bucket.Label, bucket.Counts.Target, bucket.Counts.Reach, bucket.Counts.Open, bucket.Counts.Click)
	}
	return w.Flush()
}

func periodHeading(p funnel.Period) string {
	if p == funnel.PeriodQuarter {
		return "QUARTER"
	}
	return "MONTH"
}

func init() {
	statsCmd.Flags().Int64Var(&statsSeed, "seed", 17, "dataset generator seed")
	statsCmd.Flags().IntVar(&statsRows, "rows", 6000, "dataset row count")
	statsCmd.Flags().StringVar(&statsMode, "mode", "events", "count mode: events or hcps")
	statsCmd.Flags().StringVar(&statsPeriod, "period", "month", "trend bucket: month or quarter")
	statsCmd.Flags().StringVar(&statsFormat, "format", "table", "output format: table, json or csv")
	statsCmd.Flags().StringVar(&statsScenario, "scenario", "", "path to a YAML scenario file")
}
