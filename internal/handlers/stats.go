package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

// HandleFunnelStats returns the aggregated funnel summary for the filtered
// dataset: stage counts, conversion rates and the rate-vs-previous table.
func HandleFunnelStats(c fiber.Ctx) error {
	mode, err := funnel.ParseMode(c.Query("mode"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	ds, events := filteredEvents(c)

	return c.JSON(FunnelResponse{
		DatasetID: ds.ID.String(),
		Filtered:  len(events),
		Summary:   funnel.Aggregate(events, mode),
	})
}
