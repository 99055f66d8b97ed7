package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

// HandleTimeSeries returns per-period stage counts for the trend chart.
// Only periods present in the filtered data appear; gaps are not
// zero-filled. Under mode=hcps each bucket counts distinct HCPs within that
// bucket's rows only.
func HandleTimeSeries(c fiber.Ctx) error {
	period, err := funnel.ParsePeriod(c.Query("period"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	mode, err := funnel.ParseMode(c.Query("mode"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	_, events := filteredEvents(c)

	return c.JSON(TrendResponse{
		Period:  string(period),
		Mode:    string(mode),
		Buckets: funnel.AggregateByPeriod(events, period, mode),
	})
}
