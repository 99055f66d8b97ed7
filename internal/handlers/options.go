package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

// HandleFilterOptions returns the value universes backing the dashboard
// dropdowns. These are fixed per build, not derived from the dataset, so an
// aggressively filtered view never loses its dropdown entries.
func HandleFilterOptions(c fiber.Ctx) error {
	return c.JSON(FilterOptions{
		Brands:           funnel.Brands,
		Campaigns:        funnel.Campaigns(),
		CampaignsByBrand: funnel.CampaignsByBrand,
		Regions:          funnel.Regions,
		Specialties:      funnel.Specialties,
		Modes:            []string{string(funnel.ModeEvents), string(funnel.ModeHCPs)},
		Periods:          []string{string(funnel.PeriodMonth), string(funnel.PeriodQuarter)},
	})
}
