package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v3"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

// dimensionKey extracts the grouping field for a breakdown dimension.
var dimensionKey = map[string]func(funnel.Event) string{
	"brand":     func(e funnel.Event) string { return e.Brand },
	"campaign":  func(e funnel.Event) string { return e.Campaign },
	"region":    func(e funnel.Event) string { return e.Region },
	"specialty": func(e funnel.Event) string { return e.Specialty },
}

// handleBreakdown groups the filtered dataset by one categorical dimension
// and returns stage counts per value, sorted and paginated.
func handleBreakdown(c fiber.Ctx, dimension string) error {
	key, ok := dimensionKey[dimension]
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown dimension " + dimension})
	}

	mode, err := funnel.ParseMode(c.Query("mode"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	pagination := ParsePaginationParamsWithValidation(c, "breakdown")

	_, events := filteredEvents(c)

	groups := make(map[string][]funnel.Event)
	for _, e := range events {
		groups[key(e)] = append(groups[key(e)], e)
	}

	rows := make([]BreakdownRow, 0, len(groups))
	for name, group := range groups {
		rows = append(rows, BreakdownRow{Name: name, Counts: funnel.Aggregate(group, mode).Counts})
	}

	sortBreakdownRows(rows, pagination.SortBy, pagination.SortOrder)

	return c.JSON(NewPaginatedResponse(pageSlice(rows, pagination), pagination, int64(len(rows))))
}

func sortBreakdownRows(rows []BreakdownRow, sortBy string, order SortDirection) {
	less := func(a, b BreakdownRow) bool {
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "reach":
			return a.Counts.Reach < b.Counts.Reach
		case "open":
			return a.Counts.Open < b.Counts.Open
		case "click":
			return a.Counts.Click < b.Counts.Click
		default:
			return a.Counts.Target < b.Counts.Target
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if order == SortAsc {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}

// HandleBrandBreakdown returns stage counts per brand
func HandleBrandBreakdown(c fiber.Ctx) error {
	return handleBreakdown(c, "brand")
}

// HandleCampaignBreakdown returns stage counts per campaign
func HandleCampaignBreakdown(c fiber.Ctx) error {
	return handleBreakdown(c, "campaign")
}

// HandleRegionBreakdown returns stage counts per region
func HandleRegionBreakdown(c fiber.Ctx) error {
	return handleBreakdown(c, "region")
}

// HandleSpecialtyBreakdown returns stage counts per specialty
func HandleSpecialtyBreakdown(c fiber.Ctx) error {
	return handleBreakdown(c, "specialty")
}

// HandleBreakdown routes /api/breakdown/:dimension
func HandleBreakdown(c fiber.Ctx) error {
	return handleBreakdown(c, c.Params("dimension"))
}
