package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campanalytics/funnelboard/internal/funnel"
	"github.com/campanalytics/funnelboard/internal/report"
)

// Export command flags
var (
	exportSeed     int64
	exportRows     int
	exportMode     string
	exportPeriod   string
	exportOut      string
	exportScenario string
)

var exportCmd = &cobra.Command{
	Use:   "export --out report.xlsx",
	Short: "Write a funnel report file",
	Long: `Generate a dataset locally and write its funnel summary and trend
as an XLSX workbook or a CSV file. The format is taken from the output
file extension.

Examples:
  funnelboard export --out q4.xlsx --period quarter
  funnelboard export --out funnel.csv --mode hcps --seed 99`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

func runExport() error {
	if exportOut == "" {
		return fmt.Errorf("%w: --out is required", funnel.ErrInvalidArgument)
	}

	var xlsx bool
	switch {
	case strings.HasSuffix(exportOut, ".xlsx"):
		xlsx = true
	case strings.HasSuffix(exportOut, ".csv"):
		xlsx = false
	default:
		return fmt.Errorf("%w: output file must end in .xlsx or .csv", funnel.ErrInvalidArgument)
	}

	scenario := funnel.DefaultScenario()
	var err error
	if exportScenario != "" {
		if scenario, err = funnel.LoadScenario(exportScenario); err != nil {
			return err
		}
	}

	events, err := funnel.GenerateSeed(exportSeed, exportRows, scenario)
	if err != nil {
		return err
	}

	rep, err := report.Build(events, funnel.Period(exportPeriod), funnel.Mode(exportMode))
	if err != nil {
		return err
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer func() { _ = f.Close() }()

	if xlsx {
		err = rep.WriteXLSX(f)
	} else {
		err = rep.WriteCSV(f)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}

	fmt.Printf("Wrote %s\n", exportOut)
	return nil
}

func init() {
	exportCmd.Flags().Int64Var(&exportSeed, "seed", 17, "dataset generator seed")
	exportCmd.Flags().IntVar(&exportRows, "rows", 6000, "dataset row count")
	exportCmd.Flags().StringVar(&exportMode, "mode", "events", "count mode: events or hcps")
	exportCmd.Flags().StringVar(&exportPeriod, "period", "month", "trend bucket: month or quarter")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (.xlsx or .csv)")
	exportCmd.Flags().StringVar(&exportScenario, "scenario", "", "path to a YAML scenario file")
}
