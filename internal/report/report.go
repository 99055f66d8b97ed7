// Package report renders a funnel summary and trend into downloadable
// report formats (XLSX and CSV). It is shared by the export API endpoint
// and the export CLI command.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

// Report is the exportable view of one aggregation run.
type Report struct {
	Summary funnel.Summary
	Trend   []funnel.PeriodCounts
	Period  funnel.Period
}

// Build aggregates events into a Report. It validates the raw mode and
// period values, so callers can pass query or flag input directly.
func Build(events []funnel.Event, period funnel.Period, mode funnel.Mode) (Report, error) {
	mode, err := funnel.ParseMode(string(mode))
	if err != nil {
		return Report{}, err
	}
	period, err = funnel.ParsePeriod(string(period))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Summary: funnel.Aggregate(events, mode),
		Trend:   funnel.AggregateByPeriod(events, period, mode),
		Period:  period,
	}, nil
}

var funnelHeader = []string{"stage", "count", "rate_vs_previous"}

func trendHeader(period funnel.Period) []string {
	return []string{string(period), "target", "reach", "open", "click"}
}

// WriteXLSX writes the report as a two-sheet workbook: "Funnel" with the
// stage table and KPI rates, "Trend" with the per-period counts.
func (r Report) WriteXLSX(w io.Writer) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	const funnelSheet = "Funnel"
	xl.SetSheetName(xl.GetSheetName(0), funnelSheet)

	_ = xl.SetSheetRow(funnelSheet, "A1", &funnelHeader)
	for i, row := range r.Summary.Stages {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		record := []interface{}{row.Stage, row.Count, row.RateVsPrevious}
		_ = xl.SetSheetRow(funnelSheet, cell, &record)
	}

	kpis := [][]interface{}{
		{"reach_rate", r.Summary.ReachRate},
		{"open_rate", r.Summary.OpenRate},
		{"click_to_open", r.Summary.ClickToOpen},
	}
	for i, kpi := range kpis {
		cell, _ := excelize.CoordinatesToCellName(1, len(r.Summary.Stages)+3+i)
		_ = xl.SetSheetRow(funnelSheet, cell, &kpi)
	}

	const trendSheet = "Trend"
	if _, err := xl.NewSheet(trendSheet); err != nil {
		return fmt.Errorf("create trend sheet: %w", err)
	}
	header := trendHeader(r.Period)
	_ = xl.SetSheetRow(trendSheet, "A1", &header)
	for i, bucket := range r.Trend {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		record := []interface{}{bucket.Label, bucket.Counts.Target, bucket.Counts.Reach, bucket.Counts.Open, bucket.Counts.Click}
		_ = xl.SetSheetRow(trendSheet, cell, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// WriteCSV writes the report as CSV: the funnel table, a blank line, then
// the trend table.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(funnelHeader); err != nil {
		return err
	}
	for _, row := range r.Summary.Stages {
		record := []string{
			row.Stage,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(row.RateVsPrevious, 'f', 4, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return err
	}

	if err := cw.Write(trendHeader(r.Period)); err != nil {
		return err
	}
	for _, bucket := range r.Trend {
		record := []string{
			bucket.Label,
			strconv.Itoa(bucket.Counts.Target),
			strconv.Itoa(bucket.Counts.Reach),
			strconv.Itoa(bucket.Counts.Open),
			strconv.Itoa(bucket.Counts.Click),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
