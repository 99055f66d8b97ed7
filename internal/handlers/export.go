package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/campanalytics/funnelboard/internal/funnel"
	"github.com/campanalytics/funnelboard/internal/report"
)

type exportRequest struct {
	Format string `validate:"omitempty,oneof=csv xlsx"`
}

// HandleExport streams the funnel summary and trend of the filtered dataset
// as a CSV or XLSX download.
func HandleExport(c fiber.Ctx) error {
	req := exportRequest{Format: c.Query("format", "csv")}
	if err := requestValidator.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown export format"})
	}

	ds, events := filteredEvents(c)

	rep, err := report.Build(events, funnel.Period(c.Query("period")), funnel.Mode(c.Query("mode")))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	filename := fmt.Sprintf("funnelboard-%s.%s", ds.ID.String()[:8], req.Format)

	switch req.Format {
	case "xlsx":
		if err := rep.WriteXLSX(&buf); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
		}
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	default:
		if err := rep.WriteCSV(&buf); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
		}
		c.Set("Content-Type", "text/csv; charset=utf-8")
	}

	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
